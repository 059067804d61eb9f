package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/roman/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	ReportDir string // write one JSON report per case file
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Reports []*harness.Report `json:"reports" yaml:"reports"`
	Passed  int               `json:"passed" yaml:"passed"`
	Failed  int               `json:"failed" yaml:"failed"`
	Total   int               `json:"total" yaml:"total"`
}

func (r CheckResult) String() string {
	var b strings.Builder
	for _, rep := range r.Reports {
		mark := "✓"
		if !rep.Pass() {
			mark = "✗"
		}
		fmt.Fprintf(&b, "%s %s (%d/%d)\n", mark, rep.Name, rep.Passed, rep.Passed+rep.Failed)
		for _, res := range rep.Results {
			if res.Pass {
				continue
			}
			fmt.Fprintf(&b, "  %s %q: %s\n", res.Op, res.Input, describeMismatch(res))
		}
	}
	fmt.Fprintf(&b, "%d passed, %d failed", r.Passed, r.Failed)
	return b.String()
}

func describeMismatch(res harness.CaseResult) string {
	want := res.Want
	if res.WantError != "" {
		want = "error " + res.WantError
	}
	got := res.Got
	if res.GotError != "" {
		got = "error " + res.GotError
	}
	if res.Detail != "" {
		return fmt.Sprintf("want %s, got %s (%s)", want, got, res.Detail)
	}
	return fmt.Sprintf("want %s, got %s", want, got)
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <cases>...",
		Short: "Run conversion case files",
		Long: `Run conversion case files against the converter.

Each argument is a YAML (.yaml, .yml) or CUE (.cue) case file, or a
directory whose case files are run in lexical order.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (unreadable or invalid case files, etc.)

Examples:
  roman check ./cases
  roman check basics.yaml extended.cue --format json
  roman check ./cases --report-dir ./reports`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ReportDir, "report-dir", "", "write a JSON report per case file to this directory")

	return cmd
}

func runCheck(opts *CheckOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	files, err := collectCaseFiles(args)
	if err != nil {
		_ = formatter.Error(ErrCodeCommand, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to find case files", err)
	}
	if len(files) == 0 {
		_ = formatter.Error(ErrCodeCommand, "no case files found", args)
		return NewExitError(ExitCommandError, "no case files found")
	}

	result := CheckResult{Reports: make([]*harness.Report, 0, len(files))}
	for _, path := range files {
		cf, err := harness.LoadCaseFile(path)
		if err != nil {
			_ = formatter.Error(ErrCodeCommand, err.Error(), map[string]string{"file": path})
			return WrapExitError(ExitCommandError, "failed to load case file", err)
		}
		formatter.VerboseLog("Running %d case(s) from %s", len(cf.Cases), path)

		report := harness.Run(cf,
			harness.WithRunIDs(opts.runIDs()),
			harness.WithLogger(logger),
		)
		if opts.ReportDir != "" {
			if err := writeReport(opts.ReportDir, report); err != nil {
				_ = formatter.Error(ErrCodeCommand, err.Error(), nil)
				return WrapExitError(ExitCommandError, "failed to write report", err)
			}
		}

		result.Reports = append(result.Reports, report)
		result.Passed += report.Passed
		result.Failed += report.Failed
	}
	result.Total = result.Passed + result.Failed

	if err := formatter.Success(result); err != nil {
		return err
	}
	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d cases failed", result.Failed, result.Total))
	}
	return nil
}

// collectCaseFiles expands directory arguments into their case files.
func collectCaseFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("case path not found: %s", arg)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := harness.FindCaseFiles(arg)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

// writeReport writes report as {dir}/{name}.json.
func writeReport(dir string, report *harness.Report) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report %s: %w", report.Name, err)
	}
	path := filepath.Join(dir, report.Name+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
