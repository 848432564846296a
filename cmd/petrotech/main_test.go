package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrotech/petrotech/internal/config"
	"github.com/petrotech/petrotech/internal/filter"
	"github.com/petrotech/petrotech/internal/output"
	"github.com/petrotech/petrotech/internal/store"
)

const extraCatalog = `
schema_version: "1.0.0"
categories:
  - { id: hse, name: HSE & Safety, icon: shield }
tools:
  - id: flare-sim
    name: Flare Simulator
    icon: shield
    category: hse
    description: Flare radiation modelling
    tags: [HSE, Simulation]
    added: "2025-02-01"
`

// run executes the root command with an isolated config file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.EnvDatabase, config.EnvCatalog, config.EnvListen, config.EnvLogLevel} {
		t.Setenv(key, "")
	}

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionString(t *testing.T) {
	s := versionString()
	assert.Contains(t, s, "petrotech")
	assert.Contains(t, s, version)
	assert.Contains(t, s, commit)
	assert.Contains(t, s, date)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, versionString()+"\n", out)
}

func TestSearchJSON(t *testing.T) {
	out, err := run(t, "search", "-q", "eclipse", "-o", "json")
	require.NoError(t, err)

	var result output.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "eclipse", result.Search)
	assert.Equal(t, string(filter.SortNewest), result.Sort)
	require.Len(t, result.Tools, 2)
	assert.Equal(t, "opm-flow", result.Tools[0].ID)
	assert.Equal(t, "eclipse", result.Tools[1].ID)
}

func TestSearchCategoryAndSort(t *testing.T) {
	out, err := run(t, "search", "--category", "hse", "--sort", "oldest", "-o", "json")
	require.NoError(t, err)

	var result output.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Tools, 2)
	assert.Equal(t, "phast", result.Tools[0].ID)
	assert.Equal(t, "sphera", result.Tools[1].ID)
}

func TestSearchTagsAreConjunctive(t *testing.T) {
	out, err := run(t, "search", "--tag", "Simulation", "--tag", "Reservoir", "--tag", "Open Source", "-o", "json")
	require.NoError(t, err)

	var result output.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Tools, 1)
	assert.Equal(t, "opm-flow", result.Tools[0].ID)
}

func TestSearchMarkdownEmpty(t *testing.T) {
	out, err := run(t, "search", "-q", "no such tool anywhere")
	require.NoError(t, err)
	assert.Contains(t, out, output.EmptyMessage)
	assert.Contains(t, out, "Showing 0 of")
}

func TestSearchRejectsBadInput(t *testing.T) {
	_, err := run(t, "search", "--category", "astrology")
	assert.ErrorContains(t, err, `unknown category "astrology"`)

	_, err = run(t, "search", "--sort", "alphabetical")
	assert.Error(t, err)

	_, err = run(t, "search", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "eclipse")
	require.NoError(t, err)
	assert.Contains(t, out, "# Schlumberger ECLIPSE")
	assert.Contains(t, out, "## Key Features")

	_, err = run(t, "show", "missing")
	assert.ErrorContains(t, err, `unknown tool "missing"`)
}

func TestShowJSONIncludesCategoryName(t *testing.T) {
	out, err := run(t, "show", "eclipse", "-o", "json")
	require.NoError(t, err)

	var detail map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &detail))
	assert.Equal(t, "eclipse", detail["id"])
	assert.Equal(t, "Reservoir Engineering", detail["category_name"])
}

func TestCategoriesAndTags(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "reservoir"), lines[0])

	out, err = run(t, "tags")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "Simulation")
}

func TestCatalogFlagReplacesBuiltIn(t *testing.T) {
	path := writeCatalog(t, extraCatalog)

	out, err := run(t, "--catalog", path, "search", "-o", "json")
	require.NoError(t, err)

	var result output.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.CatalogSize)
	assert.Equal(t, "flare-sim", result.Tools[0].ID)
}

func TestValidateBuiltIn(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 17 tools")

	// drilling-ai has no added date.
	_, err = run(t, "validate", "--strict")
	assert.ErrorContains(t, err, "strict mode")
}

func TestValidateReportsErrors(t *testing.T) {
	path := writeCatalog(t, strings.Replace(extraCatalog, "category: hse", "category: geology", 1))

	out, err := run(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "tools[0].category: unknown category: geology")
}

func TestValidateJSON(t *testing.T) {
	path := writeCatalog(t, extraCatalog)

	out, err := run(t, "validate", "--json", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)
}

func TestImportThenLoadFromDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")
	src := writeCatalog(t, extraCatalog)

	out, err := run(t, "--catalog", src, "import", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 tools in 1 categories")

	out, err = run(t, "--db", db, "show", "flare-sim", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"flare-sim"`)
}

func TestImportRecordsSourceSchemaVersion(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")
	src := writeCatalog(t, strings.Replace(extraCatalog, `"1.0.0"`, `"1.3.0"`, 1))

	out, err := run(t, "--catalog", src, "import", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "(schema 1.3.0)")

	s, err := store.NewStore(db)
	require.NoError(t, err)
	defer s.Close()
	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", snap.SchemaVersion)
}

func TestImportRequiresDB(t *testing.T) {
	_, err := run(t, "import")
	assert.ErrorContains(t, err, "--db is required")
}

func TestEmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")
	_, err := run(t, "--db", db, "tags")
	assert.ErrorContains(t, err, "petrotech import")
}

func TestBrowseNeedsTerminal(t *testing.T) {
	_, err := run(t, "browse")
	assert.ErrorIs(t, err, errNoTerminal)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "loud")
	cfgPath := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "tags"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "log.level")
}

func TestInitialStateFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Browse.DefaultSort = "oldest"
	cfg.Browse.ShowCategories = false

	st := initialState(cfg)
	assert.Equal(t, filter.SortOldest, st.Sort)
	assert.False(t, st.ShowCategories)
	assert.False(t, st.HasFilters())
}
