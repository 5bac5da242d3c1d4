package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
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
	assert.Equal(t, "staticloop", rootCmd.Use)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestDefaultOutput(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "14 11 8 5 2 ", stdout)
	assert.Empty(t, stderr)
}

func TestIdempotent(t *testing.T) {
	first, _, err := execute(t)
	require.NoError(t, err)
	second, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStartFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "zero", args: []string{"--start", "0"}, want: ""},
		{name: "negative", args: []string{"-s", "-3"}, want: ""},
		{name: "five", args: []string{"-s", "5"}, want: "3 0 "},
		{name: "default", args: nil, want: "14 11 8 5 2 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funcdemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loop:\n  start: 6\noutput: yaml\n"), 0644))

	stdout, _, err := execute(t, "--config", path)
	require.NoError(t, err)

	var decoded struct {
		Start   int   `yaml:"start"`
		Printed []int `yaml:"printed"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, 6, decoded.Start)
	assert.Equal(t, []int{4, 1}, decoded.Printed)
}

func TestVerboseLogsEveryCall(t *testing.T) {
	stdout, stderr, err := execute(t, "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "14 11 8 5 2 ", stdout)
	assert.Equal(t, 17, strings.Count(stderr, "msg=\"counter call\""))
}

func TestUnknownFormat(t *testing.T) {
	stdout, _, err := execute(t, "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
	assert.Empty(t, stdout)
}
