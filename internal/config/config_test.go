package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.Strict)
	assert.Equal(t, DefaultMaxWidth, cfg.MaxWidth)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOGLINE_OUTPUT", "json")
	t.Setenv("LOGLINE_LOG_LEVEL", "debug")
	t.Setenv("LOGLINE_STRICT", "true")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
}

func TestReadFileExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logline.yaml")
	content := "output: csv\ncolor: never\nmax_width: 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := New()
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Output)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 30, cfg.MaxWidth)
}

func TestReadFileExplicitMissing(t *testing.T) {
	err := ReadFile(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReadFileDefaultMissingIsIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.NoError(t, ReadFile(New(), ""))
}

func TestFlagsOverrideFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: csv\n"), 0644))
	t.Setenv("LOGLINE_OUTPUT", "table")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "table", "")
	require.NoError(t, flags.Parse([]string{"--output", "json"}))

	v := New()
	require.NoError(t, BindFlags(v, flags, map[string]string{"output": KeyOutput, "absent": KeyColor}))
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Output: "table", Color: "auto"}, false},
		{"normalises_case", Config{Output: " JSON ", Color: "Never"}, false},
		{"bad_output", Config{Output: "xml", Color: "auto"}, true},
		{"bad_color", Config{Output: "csv", Color: "rainbow"}, true},
		{"negative_width", Config{Output: "csv", Color: "auto", MaxWidth: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
