// Package config resolves CLI settings from flags, LOGLINE_* environment
// variables and an optional .logline.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/penwyp/go-logline/internal/presentation/formatter"
	"github.com/penwyp/go-logline/internal/util"
)

const (
	EnvPrefix  = "LOGLINE"
	ConfigName = ".logline"
	ConfigType = "yaml"

	KeyOutput   = "output"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
	KeyColor    = "color"
	KeyStrict   = "strict"
	KeyMaxWidth = "max_width"

	DefaultMaxWidth = 60
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved CLI settings.
type Config struct {
	Output   string `mapstructure:"output"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	Color    string `mapstructure:"color"`
	Strict   bool   `mapstructure:"strict"`
	MaxWidth int    `mapstructure:"max_width"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyOutput, formatter.FormatTable)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyColor, util.ColorModeAuto)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyMaxWidth, DefaultMaxWidth)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags maps flag names onto config keys. Flags that are not present in
// the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for flagName, key := range keys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", flagName, err)
		}
	}
	return nil
}

// ReadFile reads cfgFile when set, otherwise looks for .logline.yaml in the
// home and working directories. A missing default file is not an error.
func ReadFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if !slices.Contains(formatter.SupportedFormats(), c.Output) {
		return fmt.Errorf("%w: output %q (supported: %s)", ErrInvalidConfig, c.Output,
			strings.Join(formatter.SupportedFormats(), ", "))
	}

	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	switch c.Color {
	case util.ColorModeAuto, util.ColorModeAlways, util.ColorModeNever:
	default:
		return fmt.Errorf("%w: color %q (supported: auto, always, never)", ErrInvalidConfig, c.Color)
	}

	if c.MaxWidth < 0 {
		return fmt.Errorf("%w: max_width must not be negative, got %d", ErrInvalidConfig, c.MaxWidth)
	}

	return nil
}
