package roman

import "math"

// ParseInt converts a bracket-free Roman numeral to an int in 32-bit range.
//
// Standardized and non-standardized numerals are accepted:
//
//	XLIX = 49 (standardized)
//	IL   = 49 (non-standardized)
//
// Empty text or any character other than I, V, X, L, C, D and M fails with
// ErrCodeInvalidFormat; a value outside the int32 range fails with
// ErrCodeInvalidArgument.
func ParseInt(s string) (int, error) {
	v, err := parseSimple(s)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, &Error{
			Code:    ErrCodeInvalidArgument,
			Message: "value exceeds 32-bit integer range",
			Input:   s,
		}
	}
	return int(v), nil
}

// parseSimple folds standard glyphs only.
func parseSimple(s string) (int64, error) {
	if s == "" {
		return 0, formatError(s, "roman numeral must not be empty")
	}

	var f runFold
	pos := 0
	for _, r := range normalize(s) {
		sym, ok := symbols[r]
		if !ok {
			return 0, formatError(s, "invalid character %q at position %d", r, pos)
		}
		if !f.add(sym) {
			return 0, overflowError(s)
		}
		pos++
	}

	v, ok := f.sum()
	if !ok {
		return 0, overflowError(s)
	}
	return v, nil
}

// ParseLong converts a Roman numeral to an int64, accepting extended notation.
//
// Text between parentheses is multiplied by 1000 per nesting level and text
// outside any parenthesis is taken as is:
//
//	(VIII)II       =         8,002
//	((CXXIII))(CD) =   123,400,000
//	(((I)CC)DLV)DCC = 1,200,555,700
//
// Apostrophus groups (C* I Ɔ+) are read as single symbols: CIƆ = 1000,
// CCIƆƆ = 10000, IƆ = 500, IƆƆ = 5000.
//
// The empty string and "()" evaluate to 0. Unbalanced parentheses or
// apostrophus groups fail with ErrCodeInvalidFormat; results that do not fit
// an int64 fail with ErrCodeInvalidArgument.
func ParseLong(s string) (int64, error) {
	p := &bracketParser{
		input:  s,
		text:   []rune(normalize(s)),
		factor: 1,
		start:  -1,
	}
	return p.parse()
}

// bracketParser scales bracket-free segments by the factor of their nesting depth.
type bracketParser struct {
	input  string
	text   []rune
	total  int64
	factor int64
	depth  int
	// start is the index of the pending segment, -1 when none.
	start int
}

func (p *bracketParser) parse() (int64, error) {
	for i, r := range p.text {
		switch r {
		case '(':
			if err := p.flush(i); err != nil {
				return 0, err
			}
			factor, ok := mulInt64(p.factor, 1000)
			if !ok {
				return 0, &Error{
					Code:    ErrCodeInvalidArgument,
					Message: "bracket nesting exceeds 64-bit integer range",
					Input:   p.input,
				}
			}
			p.factor = factor
			p.depth++
		case ')':
			if p.depth == 0 {
				return 0, formatError(p.input, "invalid brackets: unexpected ')' at position %d", i)
			}
			if err := p.flush(i); err != nil {
				return 0, err
			}
			p.factor /= 1000
			p.depth--
		default:
			if p.start < 0 {
				p.start = i
			}
		}
	}

	if p.depth != 0 {
		return 0, formatError(p.input, "invalid brackets: %d unclosed '('", p.depth)
	}
	if err := p.flush(len(p.text)); err != nil {
		return 0, err
	}
	return p.total, nil
}

// flush evaluates the pending segment ending at end and adds it at the current factor.
func (p *bracketParser) flush(end int) error {
	if p.start < 0 {
		return nil
	}
	offset := p.start
	p.start = -1

	v, err := evalExtended(p.input, p.text[offset:end], offset)
	if err != nil {
		return err
	}
	scaled, ok := mulInt64(v, p.factor)
	if !ok {
		return overflowError(p.input)
	}
	total, ok := addInt64(p.total, scaled)
	if !ok {
		return overflowError(p.input)
	}
	p.total = total
	return nil
}

// evalExtended folds one bracket-free segment, reading apostrophus groups as composite symbols.
// offset is the segment's position in the normalized input, used in messages.
func evalExtended(input string, seg []rune, offset int) (int64, error) {
	var f runFold
	for i := 0; i < len(seg); {
		r := seg[i]
		switch {
		case r == 'C' || r == 'I':
			j := i
			for j < len(seg) && seg[j] == 'C' {
				j++
			}
			if j+1 < len(seg) && seg[j] == 'I' && isReversedC(seg[j+1]) {
				k := j + 1
				for k < len(seg) && isReversedC(seg[k]) {
					k++
				}
				sym, err := apostrophus(input, j-i, k-j-1, offset+i)
				if err != nil {
					return 0, err
				}
				if !f.add(sym) {
					return 0, overflowError(input)
				}
				i = k
				continue
			}
			if j == i {
				// A lone 'I' not followed by a reversed C.
				j = i + 1
			}
			for ; i < j; i++ {
				if !f.add(symbols[seg[i]]) {
					return 0, overflowError(input)
				}
			}
		case isReversedC(r):
			return 0, formatError(input, "invalid apostrophus: %q at position %d without leading 'I'", r, offset+i)
		default:
			sym, ok := symbols[r]
			if !ok {
				return 0, formatError(input, "invalid character %q at position %d", r, offset+i)
			}
			if !f.add(sym) {
				return 0, overflowError(input)
			}
			i++
		}
	}

	v, ok := f.sum()
	if !ok {
		return 0, overflowError(input)
	}
	return v, nil
}

// apostrophus builds the composite symbol for open leading 'C' and close trailing 'Ɔ':
// 1000*10^(open-1) when open > 0, plus 500*10^(close-open-1) when close > open.
func apostrophus(input string, open, close, pos int) (symbol, error) {
	if close < open {
		return symbol{}, formatError(input, "invalid apostrophus at position %d: %d 'C' but only %d 'Ɔ'", pos, open, close)
	}

	var value int64
	if open > 0 {
		p, ok := pow10(open + 2)
		if !ok {
			return symbol{}, overflowError(input)
		}
		value = p
	}
	if close > open {
		p, ok := pow10(close - open + 1)
		if !ok {
			return symbol{}, overflowError(input)
		}
		half, ok := mulInt64(5, p)
		if !ok {
			return symbol{}, overflowError(input)
		}
		if value, ok = addInt64(value, half); !ok {
			return symbol{}, overflowError(input)
		}
	}
	return symbol{value: value, exponent: open + 2}, nil
}

func overflowError(input string) *Error {
	return &Error{
		Code:    ErrCodeInvalidArgument,
		Message: "value exceeds 64-bit integer range",
		Input:   input,
	}
}
