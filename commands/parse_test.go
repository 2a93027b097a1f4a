package commands

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandTable(t *testing.T) {
	out, err := runCLI(t, "parse", "--color", "never",
		"I 29 la la la", "W 128 warn warn", "E 2 562 help help", "This is not in the right format")
	require.NoError(t, err)

	for _, want := range []string{"la la la", "warn warn", "help help", "562", "This is not in the right format", "4 line(s), 1 unknown"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\033[")
}

func TestParseCommandJSON(t *testing.T) {
	out, err := runCLI(t, "parse", "-o", "json", "E 2 562 help help", "I abc text", "")
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)

	assert.Equal(t, "error", records[0]["severity"])
	assert.EqualValues(t, 2, records[0]["code"])
	assert.EqualValues(t, 562, records[0]["timestamp"])
	assert.Equal(t, "help help", records[0]["text"])

	assert.Equal(t, "unknown", records[1]["kind"])
	assert.Equal(t, "abc text", records[1]["text"])

	assert.Equal(t, "unknown", records[2]["kind"])
	assert.Equal(t, "", records[2]["text"])
}

func TestParseCommandCSV(t *testing.T) {
	out, err := runCLI(t, "parse", "--output", "csv", "W 128 warn warn")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "W 128 warn warn,message,warning,,128,warn warn", lines[1])
}

func TestParseCommandStrict(t *testing.T) {
	_, err := runCLI(t, "parse", "--strict", "I 1 ok")
	assert.NoError(t, err)

	out, err := runCLI(t, "parse", "--strict", "I 1 ok", "garbage")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStrictFailure))
	assert.Contains(t, out, "garbage", "results are still printed before failing")
}

func TestParseCommandStrictFromEnv(t *testing.T) {
	t.Setenv("LOGLINE_STRICT", "true")

	_, err := runCLI(t, "parse", "garbage")
	assert.ErrorIs(t, err, ErrStrictFailure)
}

func TestParseCommandRequiresArgs(t *testing.T) {
	_, err := runCLI(t, "parse")
	assert.Error(t, err)
}
