package filter

import (
	"fmt"
	"slices"
	"time"

	"github.com/petrotech/petrotech/internal/catalog"
)

// SortOrder selects how visible tools are ordered by their Added date.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// DefaultSortOrder is the order a fresh view starts with.
const DefaultSortOrder = SortNewest

// SortOrders lists every valid order, in display order.
var SortOrders = []SortOrder{SortNewest, SortOldest}

// ParseSortOrder converts a string to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortNewest, SortOldest:
		return SortOrder(s), nil
	default:
		return "", fmt.Errorf("unknown sort order %q (want newest or oldest)", s)
	}
}

// Label returns the human-readable name of the order.
func (o SortOrder) Label() string {
	switch o {
	case SortOldest:
		return "Sort by Time (asc)"
	default:
		return "Sort by Time (desc)"
	}
}

// Flip returns the opposite order.
func (o SortOrder) Flip() SortOrder {
	if o == SortOldest {
		return SortNewest
	}
	return SortOldest
}

// Sort returns a copy of tools stably ordered by Added date. Tools without a
// parseable date go last in either order and keep their relative order.
func Sort(tools []catalog.Tool, order SortOrder) []catalog.Tool {
	type keyed struct {
		tool  catalog.Tool
		added time.Time
		dated bool
	}

	items := make([]keyed, len(tools))
	for i, t := range tools {
		added, err := time.Parse(catalog.DateLayout, t.Added)
		items[i] = keyed{tool: t, added: added, dated: err == nil}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		switch {
		case a.dated != b.dated:
			if a.dated {
				return -1
			}
			return 1
		case !a.dated:
			return 0
		case order == SortOldest:
			return a.added.Compare(b.added)
		default:
			return b.added.Compare(a.added)
		}
	})

	out := make([]catalog.Tool, len(items))
	for i, it := range items {
		out[i] = it.tool
	}
	return out
}
