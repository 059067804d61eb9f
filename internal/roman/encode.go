package roman

import "strings"

// Range of values Standard can encode.
const (
	MinStandard = 1
	MaxStandard = 3999
)

// maxStandardLen is the length of the longest standard numeral (3888 = MMMDCCCLXXXVIII).
const maxStandardLen = 15

// Standard converts n in [MinStandard, MaxStandard] to its canonical Roman numeral.
//
// Example:
//
//	s, _ := Standard(2706) // "MMDCCVI"
func Standard(n int) (string, error) {
	if n < MinStandard || n > MaxStandard {
		return "", argumentError("%d cannot be converted to standard Roman, must be in [%d, %d]", n, MinStandard, MaxStandard)
	}

	// Collect digits least significant first, then emit most significant first.
	var digits [len(tiers)]int
	for exponent := 0; n > 0; exponent++ {
		digits[exponent] = n % 10
		n /= 10
	}

	var b strings.Builder
	b.Grow(maxStandardLen)
	for exponent := len(digits) - 1; exponent >= 0; exponent-- {
		writeDigit(&b, digits[exponent], exponent)
	}
	return b.String(), nil
}

// writeDigit appends the subtractive encoding of one decimal digit.
func writeDigit(b *strings.Builder, digit, exponent int) {
	one := tiers[exponent].one
	switch {
	case digit == 9:
		b.WriteByte(one)
		b.WriteByte(tiers[exponent+1].one)
	case digit >= 5:
		b.WriteByte(tiers[exponent].five)
		for i := 5; i < digit; i++ {
			b.WriteByte(one)
		}
	case digit == 4:
		b.WriteByte(one)
		b.WriteByte(tiers[exponent].five)
	default:
		for i := 0; i < digit; i++ {
			b.WriteByte(one)
		}
	}
}

// Large converts any positive n to standard numerals for each thousands group.
// Index 0 holds the least significant group; zero groups are empty strings.
//
// Example:
//
//	groups, _ := Large(4000123) // ["CXXIII", "", "IV"]
func Large(n int) ([]string, error) {
	if n < 1 {
		return nil, argumentError("%d cannot be converted to Roman, must be positive", n)
	}

	groups := make([]string, 0, 7)
	for ; n > 0; n /= 1000 {
		group := n % 1000
		if group == 0 {
			groups = append(groups, "")
			continue
		}
		s, err := Standard(group)
		if err != nil {
			return nil, err
		}
		groups = append(groups, s)
	}
	return groups, nil
}

// FormatLarge joins Large groups into parenthesis notation understood by ParseLong.
// Group k is wrapped in k levels of parentheses; empty groups are omitted.
//
// Example:
//
//	FormatLarge([]string{"CXXIII", "", "IV"}) // "((IV))CXXIII"
func FormatLarge(groups []string) string {
	var b strings.Builder
	for k := len(groups) - 1; k >= 0; k-- {
		if groups[k] == "" {
			continue
		}
		b.WriteString(strings.Repeat("(", k))
		b.WriteString(groups[k])
		b.WriteString(strings.Repeat(")", k))
	}
	return b.String()
}
