package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes a fresh command tree with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandStructure(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "logline", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "parse")
	assert.Contains(t, names, "luhn")
}

func TestRootPersistentFlagDefaults(t *testing.T) {
	tests := []struct {
		flag         string
		defaultValue string
	}{
		{"config", ""},
		{"debug", "false"},
		{"output", "table"},
		{"log-level", "info"},
		{"log-file", ""},
		{"color", "auto"},
		{"max-width", "60"},
	}

	cmd := newRootCmd()
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.flag)
			require.NotNil(t, flag)
			assert.Equal(t, tt.defaultValue, flag.DefValue)
		})
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := runCLI(t, "parse", "-o", "xml", "I 1 a")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestConfigFileIsApplied(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "logline.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("output: csv\n"), 0644))

	out, err := runCLI(t, "--config", cfgFile, "parse", "I 29 la la la")
	require.NoError(t, err)
	assert.Contains(t, out, "Input,Kind,Severity,Code,Timestamp,Text")
}

func TestLogFileFlag(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "logline.log")

	_, err := runCLI(t, "--log-file", logFile, "--log-level", "debug", "parse", "I 1 a", "junk")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Classified line")
	assert.Contains(t, string(data), "1 of 2 line(s) could not be classified")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "test/path"), expandPath("~/test/path"))
	assert.Equal(t, "/absolute/path", expandPath("/absolute/path"))

	abs, _ := filepath.Abs("relative/path")
	assert.Equal(t, abs, expandPath("relative/path"))
}

func TestEnsureDir(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	require.NoError(t, ensureDir(testDir))
	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, ensureDir(testDir))
}
