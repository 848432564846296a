// Package filter implements the search, facet, and sort predicates applied
// to catalog tools.
package filter

import (
	"strings"

	"github.com/petrotech/petrotech/internal/catalog"
)

// Criteria is the set of constraints a tool must satisfy to be visible.
type Criteria struct {
	// Search is matched case-insensitively against name and description.
	Search string
	// Category is a category id; empty means any category.
	Category string
	// Tags must all be present on the tool; empty means any tags.
	Tags []string
}

// Apply returns the tools matching every constraint in c, in input order.
// The result is never nil and never shares a backing array with tools.
func Apply(tools []catalog.Tool, c Criteria) []catalog.Tool {
	out := make([]catalog.Tool, 0, len(tools))
	for _, t := range tools {
		if Matches(t, c) {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether a single tool satisfies c.
func Matches(t catalog.Tool, c Criteria) bool {
	return matchesText(t, strings.ToLower(c.Search)) &&
		matchesCategory(t, c.Category) &&
		matchesTags(t, c.Tags)
}

// matchesText expects needle already lower-cased.
func matchesText(t catalog.Tool, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

func matchesCategory(t catalog.Tool, category string) bool {
	return category == "" || t.Category == category
}

func matchesTags(t catalog.Tool, tags []string) bool {
	for _, tag := range tags {
		if !t.HasTag(tag) {
			return false
		}
	}
	return true
}
