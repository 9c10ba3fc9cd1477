package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FrameRate)
	assert.False(t, cfg.Mute)
	assert.False(t, cfg.Debug)
	assert.Contains(t, cfg.SavePath, "save.json")
	assert.Contains(t, cfg.KeymapPath, "keymap.toml")
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duckling.toml")
	content := `
[save]
path = "/tmp/pond/save.json"

[display]
fps = 60

[audio]
mute = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pond/save.json", cfg.SavePath)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.True(t, cfg.Mute)
	assert.False(t, cfg.Debug, "unset keys keep defaults")
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_FrameRateRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duckling.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nfps = 0\n"), 0o600))

	_, err := Load(viper.New(), path)
	assert.Error(t, err)
}
