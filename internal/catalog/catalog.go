// Package catalog holds the read-only set of tool and category records the
// browser filters over, along with loading and validation of catalog files.
package catalog

import (
	"fmt"
	"strings"
)

// Catalog is an immutable, ordered collection of tools and categories.
// Accessors return copies; nothing mutates a Catalog once built.
type Catalog struct {
	schemaVersion string
	categories    []Category
	tools         []Tool
	categoryIndex map[string]int
	toolIndex     map[string]int
	tags          []string
}

// New validates the records and builds a Catalog. Order of both slices is
// kept as the catalog's display order.
func New(categories []Category, tools []Tool) (*Catalog, error) {
	result := Validate(categories, tools)
	if !result.Valid {
		return nil, fmt.Errorf("invalid catalog: %w", result.Err())
	}

	c := &Catalog{
		schemaVersion: DefaultSchemaVersion,
		categories:    append([]Category(nil), categories...),
		tools:         make([]Tool, len(tools)),
		categoryIndex: make(map[string]int, len(categories)),
		toolIndex:     make(map[string]int, len(tools)),
	}
	for i, cat := range c.categories {
		if strings.TrimSpace(cat.Name) == "" {
			c.categories[i].Name = cat.ID
		}
		c.categoryIndex[cat.ID] = i
	}

	seenTags := make(map[string]bool)
	for i, t := range tools {
		c.tools[i] = t.clone()
		c.toolIndex[t.ID] = i
		for _, tag := range t.Tags {
			if !seenTags[tag] && strings.TrimSpace(tag) != "" {
				seenTags[tag] = true
				c.tags = append(c.tags, tag)
			}
		}
	}

	return c, nil
}

// Tools returns all tools in catalog order.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, len(c.tools))
	for i, t := range c.tools {
		out[i] = t.clone()
	}
	return out
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Tool looks up a tool by id.
func (c *Catalog) Tool(id string) (Tool, bool) {
	i, ok := c.toolIndex[id]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i].clone(), true
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	i, ok := c.categoryIndex[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// CategoryName returns the display name for a category id, falling back to
// the id itself.
func (c *Catalog) CategoryName(id string) string {
	if cat, ok := c.Category(id); ok {
		return cat.Name
	}
	return id
}

// Tags returns every distinct tag in the order it first appears in the
// catalog.
func (c *Catalog) Tags() []string {
	return append([]string(nil), c.tags...)
}

// SchemaVersion is the schema_version of the data the catalog was built from.
func (c *Catalog) SchemaVersion() string { return c.schemaVersion }

// Len returns the number of tools.
func (c *Catalog) Len() int { return len(c.tools) }
