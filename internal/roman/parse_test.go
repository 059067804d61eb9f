package roman

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntStandard(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"I", 1},
		{"X", 10},
		{"XXII", 22},
		{"XXXIII", 33},
		{"XLIV", 44},
		{"XLIX", 49},
		{"LXXVII", 77},
		{"LXXXVIII", 88},
		{"C", 100},
		{"CCII", 202},
		{"CCCXXX", 330},
		{"CDIV", 404},
		{"DLV", 555},
		{"M", 1000},
		{"MMVIII", 2008},
		{"MMDCCVI", 2706},
		{"MMMDCCCLX", 3860},
		{"MMMCMXCIX", 3999},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntNonStandard(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"IIII", 4},
		{"XXXXX", 50},
		{"IC", 99},
		{"IL", 49},
		{"IVL", 46},
		{"VIL", 44},
		{"IIC", 98},
		{"CIIC", 198},
		{"VVX", 0},
		{"IIICD", 403},
		{"MMMM", 4000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntUnicodeNumerals(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"Ⅻ", 12},
		{"ⅯⅯⅩⅩⅥ", 2026},
		{"ⅯCMⅩCIV", 1994},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntInvalidFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"lower case", "xiv"},
		{"letter", "a"},
		{"digit", "X1"},
		{"space", "X I"},
		{"bracket", "(IV)"},
		{"apostrophus", "CIƆ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInt(tt.input)
			require.Error(t, err)
			assert.True(t, IsInvalidFormat(err), "got %v", err)
		})
	}
}

func TestParseIntInvalidCharacterMessage(t *testing.T) {
	_, err := ParseInt("XIa")
	require.Error(t, err)
	assert.Equal(t, `INVALID_FORMAT: invalid character 'a' at position 2 (input="XIa")`, err.Error())
}

func TestParseIntOverflow(t *testing.T) {
	// 2,147,484 thousands exceed math.MaxInt32.
	_, err := ParseInt(strings.Repeat("M", 2147484))
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	got, err := ParseInt(strings.Repeat("M", 2147483) + "DCXLVII")
	require.NoError(t, err)
	assert.Equal(t, 2147483647, got)
}

func TestParseLongBrackets(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"", 0},
		{"()", 0},
		{"(())", 0},
		{"XIV", 14},
		{"(IV)", 4000},
		{"((IX))L", 9000050},
		{"(VIII)II", 8002},
		{"((CXXIII))(CD)", 123400000},
		{"(((I)CC)DLV)DCC", 1200555700},
		{"X(I)", 1010},
		{"(I)X(I)", 2010},
		{"((((((I))))))", 1000000000000000000},
		{"((((((IX))))))", 9000000000000000000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLong(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLongApostrophus(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"IƆ", 500},
		{"CIƆ", 1000},
		{"IƆƆ", 5000},
		{"CCIƆƆ", 10000},
		{"IƆƆƆ", 50000},
		{"CCCIƆƆƆ", 100000},
		{"CIƆƆ", 1500},
		{"CIↃ", 1000},
		{"CCIↃƆ", 10000},
		{"MCIƆ", 2000},
		{"CIƆIƆƆ", 6000},
		{"CIƆCCXXXIV", 1234},
		{"IƆCCCXXI", 821},
		{"XCIX", 99},
		{"CCI", 201},
		{"(CIƆ)", 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLong(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLongInvalidFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed", "(CDIX"},
		{"unopened", "CDIX)"},
		{"closing first", ")("},
		{"nested unclosed", "(()"},
		{"invalid character", "(IVa)"},
		{"lone reversed c", "Ɔ"},
		{"reversed c after x", "XƆ"},
		{"unbalanced apostrophus", "CCIƆ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLong(tt.input)
			require.Error(t, err)
			assert.True(t, IsInvalidFormat(err), "got %v", err)
		})
	}
}

func TestParseLongOverflow(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"nesting", "(((((((I)))))))"},
		{"scaled value", "((((((X))))))"},
		{"sum", "((((((IX))))))((((((I))))))"},
		{"apostrophus", strings.Repeat("C", 17) + "I" + strings.Repeat("Ɔ", 17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLong(tt.input)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestErrorClassificationWrapped(t *testing.T) {
	_, err := ParseLong("(X")
	require.Error(t, err)

	wrapped := fmt.Errorf("parse header: %w", err)
	assert.True(t, IsInvalidFormat(wrapped))
	assert.False(t, IsInvalidArgument(wrapped))

	code, ok := CodeOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInvalidFormat, code)

	var re *Error
	require.True(t, errors.As(wrapped, &re))
	assert.Equal(t, "(X", re.Input)

	_, ok = CodeOf(errors.New("other"))
	assert.False(t, ok)
	assert.False(t, IsInvalidFormat(nil))
}
