package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "appledocs-mcp", cfg.Server.Name)
	assert.Equal(t, DefaultSearchLimit, cfg.Search.DefaultLimit)
	assert.Contains(t, cfg.Docs.CommonFrameworks, "Foundation")
	assert.Contains(t, cfg.Docs.CommonFrameworks, "Combine")
	assert.Len(t, cfg.Docs.CommonFrameworks, 7)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSymbolScanCap, cfg.Search.SymbolScanCap)
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "appledocs.toml")
	content := `
[server]
name = "docs-dev"
version = "0.0.1"

[search]
default_limit = 5

[docs]
extra_roots = ["relative/docs", "/abs/docs"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "docs-dev", cfg.Server.Name)
	assert.Equal(t, 5, cfg.Search.DefaultLimit)
	// Untouched sections keep defaults.
	assert.Equal(t, DefaultSuggestionCap, cfg.Search.SuggestionCap)
	assert.Len(t, cfg.Docs.CommonFrameworks, 7)

	// Relative roots resolve against the config directory.
	assert.Equal(t, filepath.Join(dir, "relative", "docs"), cfg.Docs.ExtraRoots[0])
	assert.Equal(t, "/abs/docs", cfg.Docs.ExtraRoots[1])
}

func TestLoad_EnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nname = \"from-env\"\n"), 0644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Server.Name)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server\nname="), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.toml")
		require.NoError(t, os.WriteFile(path, []byte("[search]\ndefault_limit = 0\n"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
