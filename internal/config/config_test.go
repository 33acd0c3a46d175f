package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggardner42/card-server/entropy"
)

func TestLoadEmptyFilename(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, entropy.DefaultBlockSize, cfg.Source.BlockSize)
	assert.Equal(t, "", cfg.Source.Path)
}

func TestLoadFile(t *testing.T) {
	content := `
source {
  path       = "/dev/urandom"
  block_size = 64
}

verify {
  trials = 5000
  max    = 13
}
`
	path := filepath.Join(t.TempDir(), "cardshuffle.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/urandom", cfg.Source.Path)
	assert.Equal(t, 64, cfg.Source.BlockSize)
	assert.Equal(t, 5000, cfg.Verify.Trials)
	assert.Equal(t, 13, cfg.Verify.Max)
	assert.Equal(t, 0, cfg.Verify.Workers)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	content := `
verify {
  trials = 200
}
`
	path := filepath.Join(t.TempDir(), "partial.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Verify.Trials)
	assert.Equal(t, Default().Verify.Max, cfg.Verify.Max)
	assert.Equal(t, Default().Source.BlockSize, cfg.Source.BlockSize)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("source {"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
