package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuinorg/objects4go/errors"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"validate", []string{"validate", "Mon-Fri 09:00-17:00"}, "valid\n"},
		{"validate ranges", []string{"validate", "--type", "hourranges", "09:00-12:00+13:00-17:00"}, "valid\n"},
		{"validate currency", []string{"validate", "-t", "currencyamount", "1234.56 EUR"}, "valid\n"},
		{"normalize", []string{"normalize", "Fri 18:00-03:00"}, "FRI 18:00-24:00,SAT 00:00-03:00\n"},
		{"normalize compressed", []string{"--compress", "normalize", "Mon 09:00-12:00+12:00-13:00"}, "MON 09:00-13:00\n"},
		{"compress", []string{"compress", "Mon-Fri 06:00-18:00,Sat/Sun 06:00-12:00"}, "MON-FRI 06:00-18:00,SAT/SUN 06:00-12:00\n"},
		{"diff", []string{"diff", "Mon 09:00-12:00", "Mon 09:00-12:00+13:00-17:00"}, "ADDED MON 13:00-17:00\n"},
		{
			"diff several",
			[]string{"diff", "Mon-Fri 09:00-18:00", "Mon-Thu 09:00-18:00,Fri 09:00-17:00,Sat 10:00-12:00"},
			"REMOVED FRI 17:00-18:00\nADDED SAT 10:00-12:00\n",
		},
		{"diff none", []string{"diff", "Mon 09:00-12:00", "Mon 09:00-12:00"}, ""},
		{"open at day", []string{"open-at", "Mon-Thu 09:00-18:00,Fri 09:00-03:00", "Sat 01:00-02:00"}, "true\n"},
		{"closed at day", []string{"open-at", "Mon-Thu 09:00-18:00,Fri 09:00-03:00", "Sat 02:00-04:00"}, "false\n"},
		{"open at time", []string{"open-at", "Fri 09:00-03:00", "--at", "2024-01-06T01:00:00Z"}, "true\n"},
		{"closed at time", []string{"open-at", "Fri 09:00-03:00", "--at", "2024-01-07T10:00:00Z"}, "false\n"},
		{"similar", []string{"similar", "Mon 09:00-12:00+12:00-13:00", "Mon 09:00-13:00"}, "true\n"},
		{"not similar", []string{"similar", "Mon 09:00-12:00", "Tue 09:00-12:00"}, "false\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"duplicate day", []string{"validate", "Mon 00:00-24:00,Mon 01:00-02:00"}, errors.ErrCodeValidation},
		{"unknown type", []string{"validate", "--type", "nope", "x"}, errors.ErrCodeValidation},
		{"invalid schedule", []string{"normalize", "Mon 9-12"}, errors.ErrCodeValidation},
		{"invalid diff target", []string{"diff", "Mon 09:00-12:00", "Mon"}, errors.ErrCodeValidation},
		{"day spans midnight", []string{"open-at", "Mon 09:00-12:00", "Mon 22:00-02:00"}, errors.ErrCodePrecondition},
		{"bad time", []string{"open-at", "Mon 09:00-12:00", "--at", "tomorrow"}, errors.ErrCodeValidation},
		{"bad output", []string{"--output", "csv", "compress", "Mon 09:00-12:00"}, errors.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), err.Error())
			assert.Empty(t, stdout)
		})
	}
}

func TestJSONOutput(t *testing.T) {
	stdout, _, err := run(t, "-o", "json", "diff", "Mon 09:00-12:00", "Mon 09:00-12:00+13:00-17:00")
	require.NoError(t, err)

	var got struct {
		From    string `json:"from"`
		Changes []struct {
			Type  string `json:"type"`
			Day   string `json:"day"`
			Range string `json:"range"`
		} `json:"changes"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "Mon 09:00-12:00", got.From)
	require.Len(t, got.Changes, 1)
	assert.Equal(t, "ADDED", got.Changes[0].Type)
	assert.Equal(t, "MON", got.Changes[0].Day)
	assert.Equal(t, "13:00-17:00", got.Changes[0].Range)
}

func TestXMLOutput(t *testing.T) {
	stdout, _, err := run(t, "--output", "xml", "similar", "Mon 09:00-13:00", "Mon 09:00-13:00")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<answer")
	assert.Contains(t, stdout, ">true</answer>")

	stdout, _, err = run(t, "--output", "xml", "diff", "Mon 09:00-12:00", "Tue 09:00-12:00")
	require.NoError(t, err)
	assert.Contains(t, stdout, `<change type="REMOVED" day="MON" range="09:00-12:00"></change>`)
	assert.Contains(t, stdout, `<change type="ADDED" day="TUE" range="09:00-12:00"></change>`)
}

func TestConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openinghours.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  compress: true\n"), 0o600))
	t.Setenv("OBJECTS4GO_OUTPUT_FORMAT", "yaml")

	stdout, _, err := run(t, "--config", path, "normalize", "Mon-Fri 09:00-17:00")
	require.NoError(t, err)
	assert.Contains(t, stdout, "schedule: MON-FRI 09:00-17:00")
	assert.Contains(t, stdout, "input: Mon-Fri 09:00-17:00")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "compress", "Sat/Sun 10:00-14:00")
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration loaded")
	assert.Contains(t, stderr, "parsed schedule")

	_, stderr, err = run(t, "compress", "Sat/Sun")
	require.Error(t, err)
	assert.Contains(t, stderr, "command failed")
	assert.Contains(t, stderr, "VALIDATION_ERROR")
	assert.Contains(t, stderr, `"cause"`)
}

func TestExecute(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, Execute([]string{"compress", "Mon 09:00-12:00"}, &stdout, &stderr))
	assert.Equal(t, "MON 09:00-12:00\n", stdout.String())

	stdout.Reset()
	assert.Equal(t, 1, Execute([]string{"validate", "PH 18:00-03:00"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Error:")
	assert.Empty(t, stdout.String())
}
