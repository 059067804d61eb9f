package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Case operations.
const (
	OpStandard    = "standard"
	OpLarge       = "large"
	OpFormatLarge = "format_large"
	OpParseInt    = "parse_int"
	OpParseLong   = "parse_long"
)

// Expected error kinds, the lower-cased roman.ErrorCode values.
const (
	ErrorInvalidArgument = "invalid_argument"
	ErrorInvalidFormat   = "invalid_format"
)

// CaseFile is a named list of conversion cases.
type CaseFile struct {
	// Name identifies the file in reports and golden snapshots.
	Name string `yaml:"name" json:"name"`

	// Description explains what the cases cover.
	Description string `yaml:"description" json:"description"`

	// Cases are evaluated in order.
	Cases []Case `yaml:"cases" json:"cases"`
}

// Case is one conversion with either an expected output or an expected error.
type Case struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op" json:"op"`

	// Input is a decimal integer for standard, large and format_large,
	// and numeral text for parse_int and parse_long.
	Input string `yaml:"input" json:"input"`

	// Want is the expected output. Large groups are joined with ","
	// least significant first ("CXXIII,,IV"); parse results are decimal.
	Want string `yaml:"want,omitempty" json:"want,omitempty"`

	// Error is the expected error kind (invalid_argument or invalid_format).
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// caseSchema constrains CUE case files. #CaseFile is closed, so unknown
// fields are rejected like YAML's KnownFields.
const caseSchema = `
#Case: {
	op:     "standard" | "large" | "format_large" | "parse_int" | "parse_long"
	input:  string
	want?:  string
	error?: "invalid_argument" | "invalid_format"
}

#CaseFile: {
	name:         string
	description?: string
	cases: [...#Case]
}
`

// LoadCaseFile reads a case file, choosing the decoder by extension
// (.yaml/.yml or .cue).
func LoadCaseFile(path string) (*CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var cf *CaseFile
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		cf, err = decodeYAML(data)
	case ".cue":
		cf, err = decodeCUE(path, data)
	default:
		return nil, fmt.Errorf("unsupported case file extension %q (want .yaml, .yml or .cue)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateCaseFile(cf); err != nil {
		return nil, fmt.Errorf("invalid case file %s: %w", path, err)
	}
	return cf, nil
}

func decodeYAML(data []byte) (*CaseFile, error) {
	var cf CaseFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cf, nil
}

func decodeCUE(path string, data []byte) (*CaseFile, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(caseSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling case schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#CaseFile")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("CUE case file does not match schema: %w", err)
	}

	var cf CaseFile
	if err := unified.Decode(&cf); err != nil {
		return nil, fmt.Errorf("decoding CUE case file: %w", err)
	}
	return &cf, nil
}

// ValidateCaseFile checks that required fields are present and every case is well formed.
func ValidateCaseFile(cf *CaseFile) error {
	if cf.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(cf.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range cf.Cases {
		if err := validateCase(c); err != nil {
			return fmt.Errorf("case %d: %w", i, err)
		}
	}
	return nil
}

func validateCase(c Case) error {
	switch c.Op {
	case OpStandard, OpLarge, OpFormatLarge:
		if _, err := strconv.Atoi(c.Input); err != nil {
			return fmt.Errorf("op %s requires a decimal input, got %q", c.Op, c.Input)
		}
	case OpParseInt, OpParseLong:
	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}

	if (c.Want == "") == (c.Error == "") {
		return fmt.Errorf("exactly one of want or error is required")
	}
	if c.Error != "" && c.Error != ErrorInvalidArgument && c.Error != ErrorInvalidFormat {
		return fmt.Errorf("unknown error kind %q", c.Error)
	}
	return nil
}

// FindCaseFiles returns the case files in dir in lexical order.
func FindCaseFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading case directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml", ".cue":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
