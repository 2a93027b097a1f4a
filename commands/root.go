package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/penwyp/go-logline/internal/config"
	"github.com/penwyp/go-logline/internal/presentation/formatter"
	"github.com/penwyp/go-logline/internal/util"
)

// ErrStrictFailure is returned in --strict mode when any input was rejected.
var ErrStrictFailure = errors.New("strict mode: rejected input")

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"output":    config.KeyOutput,
	"log-level": config.KeyLogLevel,
	"log-file":  config.KeyLogFile,
	"color":     config.KeyColor,
	"strict":    config.KeyStrict,
	"max-width": config.KeyMaxWidth,
}

// rootOptions carries state shared by every subcommand of one command tree.
type rootOptions struct {
	cfgFile string
	debug   bool

	v   *viper.Viper
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: config.New()}

	cmd := &cobra.Command{
		Use:   "logline",
		Short: "Classify structured log lines and validate card numbers",
		Long: `logline classifies log lines of the form

  I <timestamp> <text>
  W <timestamp> <text>
  E <code> <timestamp> <text>

into typed messages, falling back to "unknown" for anything else. It also
ships a Luhn checksum validator for card numbers.

Examples:
  logline parse "I 29 la la la" "E 2 562 help help"   # Classify two lines
  logline parse -o json "W 128 warn warn"             # Emit JSON
  logline luhn 4012888888881881                       # Validate a card number
  logline luhn --strict "4532 0151 1283 0367"         # Exit 1 when invalid`,
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return util.CloseLogger()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "",
		"Config file (default: $HOME/.logline.yaml or ./.logline.yaml)")
	flags.BoolVar(&opts.debug, "debug", false,
		"Enable debug logging to stderr")
	flags.StringP("output", "o", formatter.FormatTable,
		"Output format ("+strings.Join(formatter.SupportedFormats(), ", ")+")")
	flags.String("log-level", "info",
		"Log level (debug, info, warn, error)")
	flags.String("log-file", "",
		"Append logs to this file")
	flags.String("color", util.ColorModeAuto,
		"Colour table output (auto, always, never)")
	flags.Int("max-width", config.DefaultMaxWidth,
		"Truncate table cells wider than this (0 = unlimited)")

	cmd.AddCommand(newParseCmd(opts), newLuhnCmd(opts))
	return cmd
}

// setup resolves configuration and initializes logging before any subcommand runs.
func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	if err := config.BindFlags(o.v, cmd.Flags(), flagKeys); err != nil {
		return err
	}
	if err := config.ReadFile(o.v, o.cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load(o.v)
	if err != nil {
		return err
	}

	logLevel := cfg.LogLevel
	if o.debug {
		logLevel = "debug"
	}

	logFile := cfg.LogFile
	if logFile != "" {
		logFile = expandPath(logFile)
		if err := ensureDir(filepath.Dir(logFile)); err != nil {
			return err
		}
	}

	if err := util.InitLogger(util.LoggerOptions{
		Level:   logLevel,
		File:    logFile,
		Console: o.debug,
	}); err != nil {
		return err
	}

	if used := o.v.ConfigFileUsed(); used != "" {
		util.LogDebugf("Using config file: %s", used)
	}
	util.LogDebug("Configuration resolved",
		util.F("output", cfg.Output),
		util.F("color", cfg.Color),
		util.F("strict", cfg.Strict))

	o.cfg = cfg
	return nil
}

// newFormatter builds the output formatter for cmd's output stream.
func (o *rootOptions) newFormatter(cmd *cobra.Command) (formatter.Formatter, error) {
	return formatter.NewFormatter(o.cfg.Output, formatter.Options{
		Color:          util.ColorEnabled(o.cfg.Color, cmd.OutOrStdout()),
		MaxColumnWidth: o.cfg.MaxWidth,
	})
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
