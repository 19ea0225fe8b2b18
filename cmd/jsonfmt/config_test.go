package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigIndent(t *testing.T) {
	tests := []struct {
		have    string
		want    string
		wantErr bool
	}{
		{"  ", "  ", false},
		{"", "", false},
		{"tab", "\t", false},
		{"\t\t", "\t\t", false},
		{"2", "  ", false},
		{"16", "                ", false},
		{"17", "", true},
		{"-1", "", true},
		{"--", "", true},
	}
	for _, test := range tests {
		c := config{Indent: test.have}
		got, err := c.indent()
		if test.wantErr {
			assert.Error(t, err, test.have)
			continue
		}
		require.NoError(t, err, test.have)
		assert.Equal(t, test.want, got)
	}
}

func TestConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compact: true\nverify: true\n"), 0o644))

	c := defaultConfig()
	require.NoError(t, c.loadConfigFile(path))
	assert.True(t, c.Compact)
	assert.True(t, c.Verify)
	assert.Equal(t, "  ", c.Indent)
	assert.Equal(t, "info", c.LogLevel)

	env := map[string]string{envCompact: "false", envLogLevel: "error"}
	require.NoError(t, c.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))
	assert.False(t, c.Compact)
	assert.Equal(t, "error", c.LogLevel)
	assert.NoError(t, c.validate())

	c.LogLevel = "verbose"
	assert.Error(t, c.validate())
}

func TestConfigEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	c := defaultConfig()
	require.NoError(t, c.loadConfigFile(path))
	assert.Equal(t, defaultConfig(), c)

	assert.Error(t, c.loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
