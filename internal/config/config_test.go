package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrotech/petrotech/internal/filter"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Catalog.Paths)
	assert.Equal(t, "", cfg.Catalog.Database)
	assert.Equal(t, "newest", cfg.Browse.DefaultSort)
	assert.True(t, cfg.Browse.ShowCategories)
	assert.Equal(t, "dark", cfg.Browse.MarkdownStyle)
	assert.Equal(t, "127.0.0.1:8080", cfg.Web.Listen)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	tomlContent := `
[catalog]
paths = ["extra.yaml", "/abs/catalog.yaml"]
database = "catalog.db"

[browse]
default_sort = "oldest"
show_categories = false

[web]
listen = ":9090"

[log]
level = "debug"
file = "/tmp/petrotech.log"
format = "json"
`
	dir := t.TempDir()
	tmpFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(tomlContent), 0644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "extra.yaml"), "/abs/catalog.yaml"}, cfg.Catalog.Paths)
	assert.Equal(t, filepath.Join(dir, "catalog.db"), cfg.Catalog.Database)
	assert.Equal(t, filter.SortOldest, cfg.SortOrder())
	assert.False(t, cfg.Browse.ShowCategories)
	assert.Equal(t, ":9090", cfg.Web.Listen)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Defaults should still be set for fields not specified in TOML
	assert.Equal(t, "dark", cfg.Browse.MarkdownStyle)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadInvalidTOML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("[invalid toml..."), 0644))

	_, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"sort", "[browse]\ndefault_sort = \"alphabetical\"\n", "browse.default_sort"},
		{"style", "[browse]\nmarkdown_style = \"neon\"\n", "browse.markdown_style"},
		{"level", "[log]\nlevel = \"verbose\"\n", "log.level"},
		{"format", "[log]\nformat = \"xml\"\n", "log.format"},
		{"listen", "[web]\nlisten = \"\"\n", "web.listen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(tmpFile, []byte(tt.content), 0644))

			_, err := Load(tmpFile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Catalog.Paths = []string{"/data/catalog.yaml"}
	cfg.Browse.DefaultSort = "oldest"
	cfg.Log.Level = "warn"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSortOrderFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browse.DefaultSort = "bogus"
	assert.Equal(t, filter.DefaultSortOrder, cfg.SortOrder())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDatabase, "/var/lib/petrotech.db")
	t.Setenv(EnvCatalog, "a.yaml"+string(os.PathListSeparator)+"b.yaml")
	t.Setenv(EnvListen, ":7000")
	t.Setenv(EnvLogLevel, "debug")

	cfg := DefaultConfig()
	ApplyEnv(cfg)
	assert.Equal(t, "/var/lib/petrotech.db", cfg.Catalog.Database)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, cfg.Catalog.Paths)
	assert.Equal(t, ":7000", cfg.Web.Listen)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnvUnsetKeepsValues(t *testing.T) {
	t.Setenv(EnvListen, "")

	cfg := DefaultConfig()
	ApplyEnv(cfg)
	assert.Equal(t, "127.0.0.1:8080", cfg.Web.Listen)
}
