package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `output_dir: ./summaries
greeting: Friend
questions:
  min_optional: 2
  max_optional: 4
`

func TestValidateConfigBytes_Valid(t *testing.T) {
	assert.Empty(t, ValidateConfigBytes([]byte(validConfigYAML)))
}

func TestValidateConfigBytes_Empty(t *testing.T) {
	assert.Empty(t, ValidateConfigBytes(nil))
	assert.Empty(t, ValidateConfigBytes([]byte("\n  \n")))
}

func TestValidateConfigBytes_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		location string
	}{
		{"unknown top-level key", "colour: red\n", "/"},
		{"unknown nested key", "questions:\n  count: 3\n", "/questions"},
		{"negative min", "questions:\n  min_optional: -1\n", "/questions/min_optional"},
		{"max too large", "questions:\n  max_optional: 6\n", "/questions/max_optional"},
		{"string count", "questions:\n  max_optional: three\n", "/questions/max_optional"},
		{"empty output dir", "output_dir: \"\"\n", "/output_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateConfigBytes([]byte(tt.yaml))
			require.NotEmpty(t, errs)

			found := false
			for _, e := range errs {
				if strings.HasPrefix(e, tt.location+":") {
					found = true
				}
			}
			assert.True(t, found, "expected an error at %s, got %v", tt.location, errs)
		})
	}
}

func TestValidateConfigBytes_BadYAML(t *testing.T) {
	errs := ValidateConfigBytes([]byte("output_dir: [oops\n"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "YAML parse error")
}

func TestValidateConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".assistant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfigYAML), 0o644))

	errs, err := ValidateConfigFile(path)
	require.NoError(t, err)
	assert.Empty(t, errs)

	_, err = ValidateConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
