// Package viewstate holds the user-controlled browsing state and the pure
// transitions that change it. Presentations map each input to exactly one
// transition and recompute the visible tools from the result.
package viewstate

import (
	"slices"

	"github.com/petrotech/petrotech/internal/catalog"
	"github.com/petrotech/petrotech/internal/filter"
)

// State is an immutable snapshot of the browsing controls. Transitions take
// a value receiver and return a new State; the Tags slice of the receiver
// is never modified.
type State struct {
	Search         string
	Category       string
	Tags           []string
	Sort           filter.SortOrder
	ShowCategories bool
	Open           string
}

// New returns the initial state: no filters, newest first, categories shown.
func New() State {
	return State{
		Tags:           []string{},
		Sort:           filter.DefaultSortOrder,
		ShowCategories: true,
	}
}

func (s State) SetSearchText(text string) State {
	s.Search = text
	return s
}

// ToggleCategory selects id, or clears the selection when id is already
// selected. At most one category is selected at a time.
func (s State) ToggleCategory(id string) State {
	if s.Category == id {
		s.Category = ""
	} else {
		s.Category = id
	}
	return s
}

// AddTag adds tag to the selected set. Adding a present tag is a no-op.
func (s State) AddTag(tag string) State {
	if s.HasTag(tag) {
		return s
	}
	tags := make([]string, len(s.Tags), len(s.Tags)+1)
	copy(tags, s.Tags)
	s.Tags = append(tags, tag)
	return s
}

func (s State) RemoveTag(tag string) State {
	if !s.HasTag(tag) {
		return s
	}
	tags := make([]string, 0, len(s.Tags)-1)
	for _, t := range s.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	s.Tags = tags
	return s
}

func (s State) SetSortOrder(order filter.SortOrder) State {
	s.Sort = order
	return s
}

// ResetFilters clears the category and tag facets. Search text, sort order,
// panel visibility and the opened tool are kept.
func (s State) ResetFilters() State {
	s.Category = ""
	s.Tags = []string{}
	return s
}

func (s State) ToggleCategoryPanel() State {
	s.ShowCategories = !s.ShowCategories
	return s
}

func (s State) OpenTool(id string) State {
	s.Open = id
	return s
}

func (s State) CloseTool() State {
	s.Open = ""
	return s
}

// IsZero reports whether s is the zero State rather than one built by New.
func (s State) IsZero() bool {
	return s.Search == "" && s.Category == "" && len(s.Tags) == 0 &&
		s.Sort == "" && !s.ShowCategories && s.Open == ""
}

// HasFilters reports whether a category or any tag is selected.
func (s State) HasFilters() bool {
	return s.Category != "" || len(s.Tags) > 0
}

func (s State) HasTag(tag string) bool {
	return slices.Contains(s.Tags, tag)
}

// Criteria returns the filter constraints described by s.
func (s State) Criteria() filter.Criteria {
	return filter.Criteria{
		Search:   s.Search,
		Category: s.Category,
		Tags:     slices.Clone(s.Tags),
	}
}

// Visible returns the catalog tools matching s, in s's sort order.
func Visible(c *catalog.Catalog, s State) []catalog.Tool {
	return filter.Sort(filter.Apply(c.Tools(), s.Criteria()), s.Sort)
}

// OpenedTool resolves the opened tool reference. It reports false when no
// tool is open or the id is not in the catalog.
func OpenedTool(c *catalog.Catalog, s State) (catalog.Tool, bool) {
	if s.Open == "" {
		return catalog.Tool{}, false
	}
	return c.Tool(s.Open)
}
