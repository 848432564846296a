// internal/output/formatter_test.go
package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrotech/petrotech/internal/catalog"
	"github.com/petrotech/petrotech/internal/viewstate"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func TestNewSearchResult(t *testing.T) {
	c := defaultCatalog(t)
	s := viewstate.New().ToggleCategory("reservoir").AddTag("Simulation")

	r := NewSearchResult(c, s)
	assert.Equal(t, "reservoir", r.Category)
	assert.Equal(t, []string{"Simulation"}, r.Tags)
	assert.Equal(t, "newest", r.Sort)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, c.Len(), r.CatalogSize)
	assert.Equal(t, "opm-flow", r.Tools[0].ID)
	assert.Equal(t, "Reservoir Engineering", r.CategoryName("reservoir"))
	assert.Equal(t, "mystery", r.CategoryName("mystery"))
}

func TestNewFormatter(t *testing.T) {
	f, err := New("json")
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, f)

	f, err = New("markdown")
	require.NoError(t, err)
	assert.IsType(t, &MarkdownFormatter{}, f)

	_, err = New("yaml")
	assert.Error(t, err)
}
