package roman

import "math"

// runFold accumulates symbols into value runs.
//
// The zero value is an empty fold. Carried state is the previous symbol's
// value and exponent; runs holds one total per magnitude group.
type runFold struct {
	runs         []int64
	prevValue    int64
	prevExponent int
}

// add folds one symbol. It reports false if a run total overflows int64.
func (f *runFold) add(s symbol) bool {
	last := len(f.runs) - 1
	switch {
	case last < 0 || s.exponent < f.prevExponent:
		// Magnitude dropped: start a new run.
		f.runs = append(f.runs, s.value)
	case f.prevValue < s.value:
		// Subtractive: what the run held so far is taken from the larger value.
		v, ok := subInt64(s.value, f.runs[last])
		if !ok {
			return false
		}
		f.runs[last] = v
	default:
		v, ok := addInt64(f.runs[last], s.value)
		if !ok {
			return false
		}
		f.runs[last] = v
	}
	f.prevValue = s.value
	f.prevExponent = s.exponent
	return true
}

// sum totals all runs. It reports false on int64 overflow.
func (f *runFold) sum() (int64, bool) {
	var total int64
	for _, v := range f.runs {
		var ok bool
		if total, ok = addInt64(total, v); !ok {
			return 0, false
		}
	}
	return total, true
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) == (b > 0) {
		return c, true
	}
	return 0, false
}

func subInt64(a, b int64) (int64, bool) {
	if b == math.MinInt64 {
		return 0, false
	}
	return addInt64(a, -b)
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// pow10 returns 10^k for 0 <= k <= 18.
func pow10(k int) (int64, bool) {
	if k < 0 || k > 18 {
		return 0, false
	}
	v := int64(1)
	for ; k > 0; k-- {
		v *= 10
	}
	return v, true
}
