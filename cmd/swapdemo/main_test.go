package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	// Basic smoke test - just verify the root command is set up
	require.NotNil(t, rootCmd)
	assert.Equal(t, "swapdemo", rootCmd.Use)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestDefaultOutput(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "-5", stdout)
	assert.Empty(t, stderr)
}

func TestIdempotent(t *testing.T) {
	first, _, err := execute(t)
	require.NoError(t, err)
	second, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOperandFlags(t *testing.T) {
	stdout, _, err := execute(t, "-a", "1", "-b", "2", "-c", "10")
	require.NoError(t, err)
	// b and c swap: 2 - 1 - 10
	assert.Equal(t, "-9", stdout)
}

func TestJSONOutput(t *testing.T) {
	stdout, _, err := execute(t, "--output", "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, float64(-5), decoded["value"])
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "-v")
	require.NoError(t, err)
	assert.Equal(t, "-5", stdout)
	assert.Contains(t, stderr, "by-reference(&b, &c)")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown format", args: []string{"-o", "xml"}},
		{name: "positional argument", args: []string{"extra"}},
		{name: "missing config", args: []string{"--config", "/nonexistent/funcdemo.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			assert.Error(t, err)
			assert.Empty(t, stdout)
		})
	}
}

func TestOutputFlagOverridesConfigAndEnv(t *testing.T) {
	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "funcdemo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0644))

		stdout, _, err := execute(t, "--config", path, "-o", "json")
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
		assert.Equal(t, float64(-5), decoded["value"])
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("FUNCDEMO_OUTPUT", "xml")

		stdout, _, err := execute(t, "-o", "text")
		require.NoError(t, err)
		assert.Equal(t, "-5", stdout)
	})

	t.Run("invalid without flag", func(t *testing.T) {
		t.Setenv("FUNCDEMO_OUTPUT", "xml")

		stdout, _, err := execute(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported output format")
		assert.Empty(t, stdout)
	})
}
