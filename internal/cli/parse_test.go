package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandText(t *testing.T) {
	tests := []struct {
		name string
		opts RootOptions
		args []string
		want string
	}{
		{"standard", RootOptions{Format: "text"}, []string{"MMXXIV"}, "2024\n"},
		{"non-standard", RootOptions{Format: "text"}, []string{"IIII", "IC"}, "4\n99\n"},
		{"brackets", RootOptions{Format: "text"}, []string{"((IV))CXXIII"}, "4000123\n"},
		{"apostrophus", RootOptions{Format: "text"}, []string{"CIƆ", "IƆƆ"}, "1000\n5000\n"},
		{"unicode numerals", RootOptions{Format: "text"}, []string{"Ⅻ"}, "12\n"},
		{"english grouping", RootOptions{Format: "text", Lang: "en"}, []string{"((IV))CXXIII"}, "4,000,123\n"},
		{"int", RootOptions{Format: "text"}, []string{"--int", "XLIX", "IL"}, "49\n49\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			opts := tt.opts
			cmd := NewParseCommand(&opts)
			cmd.SetOut(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestParseCommandJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewParseCommand(&RootOptions{Format: "json", Lang: "en"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"(VIII)II"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string      `json:"status"`
		Data   ParseResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []Parsed{{Numeral: "(VIII)II", Value: 8002, Display: "8,002"}}, resp.Data.Values)
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"invalid character", []string{"XQ"}, "INVALID_FORMAT"},
		{"unbalanced", []string{"(IV"}, "INVALID_FORMAT"},
		{"int rejects brackets", []string{"--int", "(I)"}, "INVALID_FORMAT"},
		{"overflow", []string{"((((((((I))))))))"}, "INVALID_ARGUMENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewParseCommand(&RootOptions{Format: "json"})
			cmd.SetOut(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestDecimalPrinter(t *testing.T) {
	tests := []struct {
		lang string
		v    int64
		want string
	}{
		{"", 1234567, "1234567"},
		{"und", 1234567, "1234567"},
		{"en", 1234567, "1,234,567"},
		{"en", 999, "999"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			p, err := newDecimalPrinter(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.format(tt.v))
		})
	}

	_, err := newDecimalPrinter("not a tag!")
	assert.Error(t, err)
}
