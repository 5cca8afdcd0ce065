package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDumpSea(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"../../testdata/sea.svg"})
	require.NoError(t, cmd.Execute())

	var got struct {
		Name string `yaml:"name"`
		Root struct {
			Children []map[string]any `yaml:"children"`
		} `yaml:"root"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "sea", got.Name)
	assert.Len(t, got.Root.Children, 4)
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "opts.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("force_resolved_paths = true\n"), 0o600))
	opts, err := loadOptions(cfg)
	require.NoError(t, err)
	assert.True(t, opts.ForceResolvedPaths)

	require.NoError(t, os.WriteFile(cfg, []byte("bogus = 1\n"), 0o600))
	_, err = loadOptions(cfg)
	assert.ErrorContains(t, err, cfg)
}

func TestMissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"does-not-exist.svg"})
	assert.Error(t, cmd.Execute())
}
