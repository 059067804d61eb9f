package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/roman/internal/config"
	"github.com/roach88/roman/internal/runid"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	Lang       string // BCP 47 tag for decimal output
	ConfigPath string

	// Config is the loaded configuration file, or defaults when none is given.
	Config *config.Config

	// Logger receives diagnostic output. Set up from --verbose before any
	// subcommand runs; nil discards.
	Logger *slog.Logger

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs runid.Generator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = config.Formats

// NewRootCommand creates the root command for the roman CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roman",
		Short: "Convert between integers and Roman numerals",
		Long: `Convert between integers and Roman numerals.

Standard numerals cover 1 to 3999. Larger values use the parenthesis
notation, where each level of parentheses multiplies by 1000, and
apostrophus forms such as CIƆ (1000) and IƆƆ (5000) are accepted on input.

Defaults for --format, --lang and --verbose may be set in a TOML file
given by --config or the ROMAN_CONFIG environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "und", "language tag for decimal output (e.g. en, de)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to TOML config file (default $"+config.EnvVar+")")

	// Add subcommands
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewLargeCommand(opts))
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))

	return cmd
}

// setup loads the config file, applies it beneath explicitly set flags and
// configures logging.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = config.Load(o.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	o.Config = cfg

	flags := cmd.Flags()
	if !flags.Changed("format") {
		o.Format = cfg.Format
	}
	if !flags.Changed("lang") {
		o.Lang = cfg.Lang
	}
	if !flags.Changed("verbose") {
		o.Verbose = cfg.Verbose
	}

	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	if _, err := newDecimalPrinter(o.Lang); err != nil {
		return WrapExitError(ExitCommandError, "invalid --lang", err)
	}

	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if o.Verbose {
		logLevel = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))
	o.Logger.Debug("configured", "format", o.Format, "lang", o.Lang, "config", o.ConfigPath)
	return nil
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *RootOptions) loadedConfig() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}

func (o *RootOptions) runIDs() runid.Generator {
	if o.RunIDs == nil {
		return runid.UUIDv7Generator{}
	}
	return o.RunIDs
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return config.IsValidFormat(format)
}
