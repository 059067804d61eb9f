package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/roach88/roman/internal/roman"
	"github.com/roach88/roman/internal/runid"
)

// ErrorBadInput marks a case whose input the harness could not hand to the converter.
const ErrorBadInput = "bad_input"

// Option configures a harness run.
type Option func(*harness)

// WithRunIDs sets the run ID generator (default UUIDv7).
func WithRunIDs(g runid.Generator) Option {
	return func(h *harness) { h.ids = g }
}

// WithLogger sets the logger for per-case debug output (default discards).
func WithLogger(l *slog.Logger) Option {
	return func(h *harness) { h.logger = l }
}

type harness struct {
	ids    runid.Generator
	logger *slog.Logger
}

// Run evaluates every case of cf and returns the report.
// Failing cases are recorded in the report, never returned as errors.
func Run(cf *CaseFile, opts ...Option) *Report {
	h := &harness{
		ids:    runid.UUIDv7Generator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	report := &Report{
		Name:    cf.Name,
		RunID:   h.ids.Generate(),
		Results: []CaseResult{},
	}

	for i, c := range cf.Cases {
		res := evaluate(c)
		h.logger.Debug("case evaluated",
			"file", cf.Name,
			"index", i,
			"op", c.Op,
			"input", c.Input,
			"pass", res.Pass,
		)
		report.add(res)
	}

	h.logger.Info("case file checked",
		"file", cf.Name,
		"run_id", report.RunID,
		"passed", report.Passed,
		"failed", report.Failed,
	)
	return report
}

// evaluate runs one case and compares the outcome with its expectation.
func evaluate(c Case) CaseResult {
	res := CaseResult{
		Op:        c.Op,
		Input:     c.Input,
		Want:      c.Want,
		WantError: c.Error,
	}

	got, err := convert(c)
	switch {
	case err == nil:
		res.Got = got
		res.Pass = c.Error == "" && got == c.Want
	default:
		code, ok := roman.CodeOf(err)
		if ok {
			res.GotError = strings.ToLower(string(code))
		} else {
			res.GotError = ErrorBadInput
		}
		res.Pass = c.Error != "" && res.GotError == c.Error
		if !res.Pass {
			res.Detail = err.Error()
		}
	}
	return res
}

func convert(c Case) (string, error) {
	switch c.Op {
	case OpStandard:
		n, err := strconv.Atoi(c.Input)
		if err != nil {
			return "", fmt.Errorf("decimal input: %w", err)
		}
		return roman.Standard(n)
	case OpLarge, OpFormatLarge:
		n, err := strconv.Atoi(c.Input)
		if err != nil {
			return "", fmt.Errorf("decimal input: %w", err)
		}
		groups, err := roman.Large(n)
		if err != nil {
			return "", err
		}
		if c.Op == OpLarge {
			return strings.Join(groups, ","), nil
		}
		return roman.FormatLarge(groups), nil
	case OpParseInt:
		v, err := roman.ParseInt(c.Input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	case OpParseLong:
		v, err := roman.ParseLong(c.Input)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("unknown op %q", c.Op)
	}
}
