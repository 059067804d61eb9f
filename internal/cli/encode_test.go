package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCommandMissingArgs(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEncodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestEncodeCommandText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single", []string{"2706"}, "MMDCCVI\n"},
		{"several", []string{"4", "9", "3999"}, "IV\nIX\nMMMCMXCIX\n"},
		{"large", []string{"--large", "4000123"}, "((IV))CXXIII\n"},
		{"large small value", []string{"--large", "14"}, "XIV\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewEncodeCommand(&RootOptions{Format: "text"})
			cmd.SetOut(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEncodeCommandOutOfRange(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEncodeCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"4000"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_ARGUMENT", resp.Error.Code)
	assert.Equal(t, "4000 cannot be converted to standard Roman, must be in [1, 3999]", resp.Error.Message)
}

func TestEncodeCommandNotDecimal(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEncodeCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"XIV"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), `"XIV" is not a decimal integer`)
}

func TestEncodeCommandJSONGolden(t *testing.T) {
	stdout, _, err := executeRoot(t, "encode", "1", "4", "3999", "--format", "json")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "encode_json", []byte(stdout))
}

func TestLargeCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLargeCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"4000123"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "x1000^0  CXXIII\nx1000^1  -\nx1000^2  IV\n((IV))CXXIII\n", buf.String())
}

func TestLargeCommandJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLargeCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"3999000"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string      `json:"status"`
		Data   LargeResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, LargeResult{
		Value:   3999000,
		Groups:  []string{"", "MMMCMXCIX"},
		Numeral: "(MMMCMXCIX)",
	}, resp.Data)
}

func TestLargeCommandRejectsNonPositive(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLargeCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--", "-5"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [INVALID_ARGUMENT]: -5 cannot be converted to Roman, must be positive")
}
