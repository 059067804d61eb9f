package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/roman/internal/roman"
)

// ParseOptions holds flags for the parse command.
type ParseOptions struct {
	*RootOptions
	Int bool // bracket-free numerals in 32-bit range only
}

// Parsed is one parsed numeral.
type Parsed struct {
	Numeral string `json:"numeral" yaml:"numeral"`
	Value   int64  `json:"value" yaml:"value"`
	Display string `json:"display" yaml:"display"`
}

// ParseResult holds the parse command output.
type ParseResult struct {
	Values []Parsed `json:"values" yaml:"values"`
}

func (r ParseResult) String() string {
	lines := make([]string, len(r.Values))
	for i, v := range r.Values {
		lines[i] = v.Display
	}
	return strings.Join(lines, "\n")
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "parse <numeral>...",
		Short: "Parse Roman numerals to integers",
		Long: `Parse each argument as a Roman numeral.

Non-standard forms are accepted (IIII = 4, IC = 99), as are parenthesis
groups ((IV)CXXIII = 4123) and apostrophus forms (CIƆ = 1000, IƆƆ = 5000).
With --int only the seven standard letters are allowed and the result
must fit a 32-bit integer.

Decimal output is formatted for --lang; the default "und" prints plain digits.

Examples:
  roman parse MMXXIV
  roman parse "((IV))CXXIII" --lang en
  roman parse --int XLIX IL --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Int, "int", false, "accept only bracket-free numerals in 32-bit range")

	return cmd
}

func runParse(opts *ParseOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	printer, err := newDecimalPrinter(opts.Lang)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --lang", err)
	}

	result := ParseResult{Values: make([]Parsed, 0, len(args))}
	for _, arg := range args {
		var v int64
		if opts.Int {
			n, err := roman.ParseInt(arg)
			if err != nil {
				return formatter.ConversionError(err)
			}
			v = int64(n)
		} else {
			v, err = roman.ParseLong(arg)
			if err != nil {
				return formatter.ConversionError(err)
			}
		}

		logger.Debug("parsed", "numeral", arg, "value", v)
		result.Values = append(result.Values, Parsed{
			Numeral: arg,
			Value:   v,
			Display: printer.format(v),
		})
	}

	return formatter.Success(result)
}

// decimalPrinter formats integers for a language. The undetermined
// language prints plain digits.
type decimalPrinter struct {
	p *message.Printer
}

func newDecimalPrinter(lang string) (*decimalPrinter, error) {
	if lang == "" || lang == "und" {
		return &decimalPrinter{}, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", lang, err)
	}
	return &decimalPrinter{p: message.NewPrinter(tag)}, nil
}

func (d *decimalPrinter) format(v int64) string {
	if d.p == nil {
		return strconv.FormatInt(v, 10)
	}
	return d.p.Sprintf("%d", v)
}
