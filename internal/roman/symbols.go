package roman

import "golang.org/x/text/unicode/norm"

// symbol is the contribution of one glyph (or apostrophus group) to a numeral.
type symbol struct {
	value    int64
	exponent int
}

// tier holds the unit and five glyphs of one decimal exponent.
// The thousands tier has no five glyph.
type tier struct {
	one  byte
	five byte
}

// tiers is indexed by decimal exponent.
var tiers = [...]tier{
	{'I', 'V'},
	{'X', 'L'},
	{'C', 'D'},
	{'M', 0},
}

// symbols maps every standard glyph to its value and exponent.
var symbols = buildSymbols()

func buildSymbols() map[rune]symbol {
	m := make(map[rune]symbol, 2*len(tiers))
	factor := int64(1)
	for exponent, t := range tiers {
		m[rune(t.one)] = symbol{value: factor, exponent: exponent}
		if t.five != 0 {
			m[rune(t.five)] = symbol{value: 5 * factor, exponent: exponent}
		}
		factor *= 10
	}
	return m
}

const (
	// ReversedC is the apostrophus closing glyph (LATIN CAPITAL LETTER OPEN O).
	ReversedC = 'Ɔ'

	// ReversedCNumeral is the Unicode ROMAN NUMERAL REVERSED ONE HUNDRED, accepted as ReversedC.
	ReversedCNumeral = 'Ↄ'
)

func isReversedC(r rune) bool {
	return r == ReversedC || r == ReversedCNumeral
}

// normalize maps compatibility forms such as U+216B (Ⅻ) to their ASCII spelling.
func normalize(s string) string {
	if norm.NFKC.IsNormalString(s) {
		return s
	}
	return norm.NFKC.String(s)
}
