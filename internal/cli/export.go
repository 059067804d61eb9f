package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/roman/internal/roman"
	"github.com/roach88/roman/internal/store"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Database string
	Max      int
	Large    bool // encode values above 3999 in parenthesis notation
}

// ExportResult holds the export command output.
type ExportResult struct {
	Database string     `json:"database" yaml:"database"`
	Run      *store.Run `json:"run" yaml:"run"`
	Total    int        `json:"total" yaml:"total"`
}

func (r ExportResult) String() string {
	return fmt.Sprintf("Exported %d numerals (%d..%d) to %s as run %s (%d rows total)",
		r.Run.RowCount, r.Run.MinValue, r.Run.MaxValue, r.Database, r.Run.ID, r.Total)
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a numeral table to SQLite",
		Long: `Write the numerals for 1..N into a SQLite database, creating it if needed.

Rows for values already present are replaced. Each export is recorded as
a run with its own run ID. N defaults to store.max_value from the config
file (3999); values above 3999 require --large.

Examples:
  roman export --db numerals.db
  roman export --db numerals.db --max 100
  roman export --db numerals.db --max 20000 --large`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default store.path from config)")
	cmd.Flags().IntVar(&opts.Max, "max", 0, "highest value to export (default store.max_value from config)")
	cmd.Flags().BoolVar(&opts.Large, "large", false, "use parenthesis notation for values above 3999")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()
	cfg := opts.loadedConfig()

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = cfg.Store.Path
	}
	if dbPath == "" {
		_ = formatter.Error(ErrCodeCommand, "--db is required", nil)
		return NewExitError(ExitCommandError, "--db is required")
	}
	maxValue := opts.Max
	if maxValue == 0 {
		maxValue = cfg.Store.MaxValue
	}

	encode := roman.Standard
	if opts.Large {
		encode = encodeLarge
	} else if maxValue > roman.MaxStandard {
		msg := fmt.Sprintf("--max %d exceeds %d; use --large", maxValue, roman.MaxStandard)
		_ = formatter.Error(ErrCodeCommand, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	logger.Info("opening database", "path", dbPath)
	st, err := store.Open(dbPath)
	if err != nil {
		return formatter.ConversionError(err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	runID := opts.runIDs().Generate()
	run, err := st.ExportRange(cmd.Context(), runID, 1, maxValue, encode)
	if err != nil {
		return formatter.ConversionError(err)
	}
	total, err := st.Count(cmd.Context())
	if err != nil {
		return formatter.ConversionError(err)
	}
	logger.Info("export complete", "run_id", run.ID, "rows", run.RowCount)

	return formatter.SuccessWithRunID(run.ID, ExportResult{
		Database: dbPath,
		Run:      run,
		Total:    total,
	})
}

func encodeLarge(n int) (string, error) {
	groups, err := roman.Large(n)
	if err != nil {
		return "", err
	}
	return roman.FormatLarge(groups), nil
}

// LookupOptions holds flags for the lookup command.
type LookupOptions struct {
	*RootOptions
	Database string
}

// LookupResult holds the lookup command output.
type LookupResult struct {
	Value   int    `json:"value" yaml:"value"`
	Numeral string `json:"numeral" yaml:"numeral"`
}

func (r LookupResult) String() string {
	return fmt.Sprintf("%d = %s", r.Value, r.Numeral)
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LookupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "lookup <numeral|n>",
		Short: "Look up a numeral or value in an exported table",
		Long: `Look up a value in a numeral table written by export.

A decimal argument is looked up by value, anything else by numeral text.

Examples:
  roman lookup --db numerals.db 1999
  roman lookup --db numerals.db MCMXCIX`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default store.path from config)")

	return cmd
}

func runLookup(opts *LookupOptions, key string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = opts.loadedConfig().Store.Path
	}
	if dbPath == "" {
		_ = formatter.Error(ErrCodeCommand, "--db is required", nil)
		return NewExitError(ExitCommandError, "--db is required")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return formatter.ConversionError(err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	result := LookupResult{}
	if n, convErr := strconv.Atoi(key); convErr == nil {
		result.Value = n
		result.Numeral, err = st.LookupValue(cmd.Context(), n)
	} else {
		result.Numeral = key
		result.Value, err = st.LookupNumeral(cmd.Context(), key)
	}
	if errors.Is(err, store.ErrNotFound) {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("%s not found in %s", key, dbPath), nil)
		return WrapExitError(ExitFailure, "lookup failed", err)
	}
	if err != nil {
		return formatter.ConversionError(err)
	}

	logger.Debug("looked up", "key", key, "value", result.Value, "numeral", result.Numeral)
	return formatter.Success(result)
}
