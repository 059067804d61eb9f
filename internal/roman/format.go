package roman

import (
	"fmt"
	"math"
	"strconv"
)

// Formatter formats integral and floating-point values as standard Roman
// numerals and parses them back. The zero value is ready to use.
type Formatter struct{}

// FormatInt formats n as a standard numeral.
// Values outside the int32 range fail before the standard range check.
func (Formatter) FormatInt(n int64) (string, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return "", argumentError("%d out of int range", n)
	}
	return Standard(int(n))
}

// FormatFloat rounds x half away from zero and formats the result.
func (f Formatter) FormatFloat(x float64) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", argumentError("%v cannot be converted to Roman", x)
	}
	r := math.Round(x)
	if r < math.MinInt32 || r > math.MaxInt32 {
		return "", argumentError("%s out of int range", strconv.FormatFloat(x, 'g', -1, 64))
	}
	return f.FormatInt(int64(r))
}

// AppendInt appends the numeral for n to dst and returns the extended buffer.
// On error dst is returned unchanged.
func (f Formatter) AppendInt(dst []byte, n int64) ([]byte, error) {
	s, err := f.FormatInt(n)
	if err != nil {
		return dst, err
	}
	return append(dst, s...), nil
}

// Parse reads a bracket-free numeral.
func (Formatter) Parse(s string) (int, error) {
	return ParseInt(s)
}

// Numeral is an integer that marshals as a standard Roman numeral.
type Numeral int

// String returns the standard numeral, or "%!Numeral(n)" when n is out of range.
func (n Numeral) String() string {
	s, err := Standard(int(n))
	if err != nil {
		return fmt.Sprintf("%%!Numeral(%d)", int(n))
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (n Numeral) MarshalText() ([]byte, error) {
	s, err := Standard(int(n))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Numeral) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text))
	if err != nil {
		return err
	}
	*n = Numeral(v)
	return nil
}
