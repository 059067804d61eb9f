// Package roman converts between integers and Roman numeral strings.
//
// Encoding:
//   - Standard produces the canonical numeral for 1..3999 (e.g. 1994 -> "MCMXCIV")
//   - Large splits any positive integer into thousands groups, least significant first
//   - FormatLarge joins those groups into parenthesis notation ("((IV))CXXIII")
//
// Parsing:
//   - ParseInt evaluates a bracket-free numeral into an int32-ranged value
//   - ParseLong additionally understands parenthesis scaling and apostrophus groups
//
// Parsing is a best-effort arithmetic evaluation rather than a strict grammar
// check. Non-canonical input such as "IIII" (4), "IC" (99) or "VIL" (44) is
// accepted and evaluated with the run-accumulation rules below.
//
// # Run accumulation
//
// Symbols are folded left to right into a list of run totals. A symbol starts
// a new run when its magnitude tier drops below the previous symbol's tier.
// Otherwise a larger value than the previous symbol replaces the run total
// with (value - run), and an equal or smaller value is added to the run.
// The result is the sum of all runs.
//
// # Extended notation
//
// ParseLong layers two notations on top of the fold:
//
//	(IV)       = 4,000            each '(' multiplies the enclosed text by 1000
//	((IX))L    = 9,000,050        groups nest and may be followed by plain text
//	CIƆ        = 1,000            apostrophus: C* I Ɔ+ is one composite symbol
//	CCIƆƆ      = 10,000
//	IƆƆ        = 5,000
//
// Apostrophus groups are lexical: they become a single symbol that takes part
// in the fold like any other glyph. Parentheses are structural: they scale
// whole segments. Both reversed-C forms U+0186 (Ɔ) and U+2183 (Ↄ) are
// accepted, and input is NFKC normalized so the Unicode Roman numeral code
// points (U+2160..U+217F, e.g. "Ⅻ") parse like their ASCII spelling.
//
// # Errors
//
// Every failure is a *Error carrying one of two codes: ErrCodeInvalidArgument
// for numeric input outside an operation's domain and ErrCodeInvalidFormat for
// malformed text. Use IsInvalidArgument and IsInvalidFormat to classify
// wrapped errors.
//
// All functions are pure and safe for concurrent use.
package roman
