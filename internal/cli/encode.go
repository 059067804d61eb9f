package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/roman/internal/roman"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Large bool // use parenthesis notation above 3999
}

// Encoding is one encoded value.
type Encoding struct {
	Value   int    `json:"value" yaml:"value"`
	Numeral string `json:"numeral" yaml:"numeral"`
}

// EncodeResult holds the encode command output.
type EncodeResult struct {
	Numerals []Encoding `json:"numerals" yaml:"numerals"`
}

func (r EncodeResult) String() string {
	lines := make([]string, len(r.Numerals))
	for i, n := range r.Numerals {
		lines[i] = n.Numeral
	}
	return strings.Join(lines, "\n")
}

// LargeResult holds the large command output.
type LargeResult struct {
	Value   int      `json:"value" yaml:"value"`
	Groups  []string `json:"groups" yaml:"groups"`
	Numeral string   `json:"numeral" yaml:"numeral"`
}

func (r LargeResult) String() string {
	var b strings.Builder
	for i, g := range r.Groups {
		if g == "" {
			g = "-"
		}
		fmt.Fprintf(&b, "x1000^%d  %s\n", i, g)
	}
	b.WriteString(r.Numeral)
	return b.String()
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode <n>...",
		Short: "Encode integers as Roman numerals",
		Long: `Encode each argument as a standard Roman numeral (1 to 3999).

With --large any positive value is accepted and written in parenthesis
notation, one level of parentheses per factor of 1000.

Examples:
  roman encode 2024
  roman encode 4 9 14 --format json
  roman encode --large 4000123`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Large, "large", false, "use parenthesis notation for values above 3999")

	return cmd
}

func runEncode(opts *EncodeOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	result := EncodeResult{Numerals: make([]Encoding, 0, len(args))}
	for _, arg := range args {
		n, err := parseDecimal(arg)
		if err != nil {
			return formatter.ConversionError(err)
		}

		var numeral string
		if opts.Large {
			groups, err := roman.Large(n)
			if err != nil {
				return formatter.ConversionError(err)
			}
			numeral = roman.FormatLarge(groups)
		} else {
			numeral, err = roman.Standard(n)
			if err != nil {
				return formatter.ConversionError(err)
			}
		}

		logger.Debug("encoded", "value", n, "numeral", numeral)
		result.Numerals = append(result.Numerals, Encoding{Value: n, Numeral: numeral})
	}

	return formatter.Success(result)
}

// NewLargeCommand creates the large command.
func NewLargeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "large <n>",
		Short: "Split an integer into base-1000 Roman groups",
		Long: `Split a positive integer into base-1000 groups, least significant
first, each encoded as a standard Roman numeral. A zero group is empty.
The joined parenthesis form is printed last.

Example:
  roman large 4000123`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLarge(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runLarge(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	n, err := parseDecimal(arg)
	if err != nil {
		return formatter.ConversionError(err)
	}
	groups, err := roman.Large(n)
	if err != nil {
		return formatter.ConversionError(err)
	}

	opts.logger().Debug("split into groups", "value", n, "groups", len(groups))
	return formatter.Success(LargeResult{
		Value:   n,
		Groups:  groups,
		Numeral: roman.FormatLarge(groups),
	})
}

// parseDecimal parses a command-line integer argument.
func parseDecimal(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not a decimal integer", arg)
	}
	return n, nil
}
