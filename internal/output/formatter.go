// internal/output/formatter.go
package output

import (
	"fmt"

	"github.com/petrotech/petrotech/internal/catalog"
	"github.com/petrotech/petrotech/internal/viewstate"
)

// Text shared by every presentation.
const (
	Brand             = "PetroTech"
	Headline          = "The Best Petroleum Engineering Tools"
	Tagline           = "Comprehensive directory of professional petroleum engineering software"
	SearchPlaceholder = "Search any tools you need..."
	EmptyMessage      = "No tools match the current filters."
)

// SearchResult holds the visible tools for one view state.
type SearchResult struct {
	Search      string         `json:"search,omitempty"`
	Category    string         `json:"category,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Sort        string         `json:"sort"`
	Total       int            `json:"total"`
	CatalogSize int            `json:"catalog_size"`
	Tools       []catalog.Tool `json:"tools"`

	categoryNames map[string]string
}

// NewSearchResult computes the visible tools of c under s.
func NewSearchResult(c *catalog.Catalog, s viewstate.State) *SearchResult {
	tools := viewstate.Visible(c, s)
	names := make(map[string]string)
	for _, cat := range c.Categories() {
		names[cat.ID] = cat.Name
	}
	return &SearchResult{
		Search:        s.Search,
		Category:      s.Category,
		Tags:          s.Tags,
		Sort:          string(s.Sort),
		Total:         len(tools),
		CatalogSize:   c.Len(),
		Tools:         tools,
		categoryNames: names,
	}
}

// CategoryName returns the display name of a category id, or the id itself.
func (r *SearchResult) CategoryName(id string) string {
	if name, ok := r.categoryNames[id]; ok {
		return name
	}
	return id
}

// ToolDetail is a single tool with its category resolved for display.
type ToolDetail struct {
	catalog.Tool
	CategoryName string `json:"category_name"`
}

// NewToolDetail resolves the category name of t against c.
func NewToolDetail(c *catalog.Catalog, t catalog.Tool) *ToolDetail {
	return &ToolDetail{Tool: t, CategoryName: c.CategoryName(t.Category)}
}

// Formatter formats search results and tool details into output bytes.
type Formatter interface {
	Format(result *SearchResult) ([]byte, error)
	FormatTool(detail *ToolDetail) ([]byte, error)
}

// New returns the formatter registered under name ("json" or "markdown").
func New(name string) (Formatter, error) {
	switch name {
	case "json":
		return NewJSONFormatter(), nil
	case "markdown", "md":
		return NewMarkdownFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want json or markdown)", name)
	}
}
