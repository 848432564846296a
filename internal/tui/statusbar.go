package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/petrotech/petrotech/internal/filter"
)

// StatusBar displays the result count, sort order, and selected tags.
type StatusBar struct {
	width   int
	visible int
	total   int
	sort    filter.SortOrder
	tags    []string
	style   lipgloss.Style
}

// NewStatusBar creates a new StatusBar with the given terminal width.
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		width: width,
		sort:  filter.DefaultSortOrder,
		style: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}),
	}
}

// SetWidth sets the terminal width used for truncation.
func (s *StatusBar) SetWidth(w int) { s.width = w }

// SetCounts sets the visible and total tool counts.
func (s *StatusBar) SetCounts(visible, total int) { s.visible = visible; s.total = total }

// SetSort sets the displayed sort order.
func (s *StatusBar) SetSort(o filter.SortOrder) { s.sort = o }

// SetTags sets the selected tags.
func (s *StatusBar) SetTags(tags []string) { s.tags = tags }

// View renders the status bar as a styled string.
func (s *StatusBar) View() string {
	line := fmt.Sprintf(" %s  %s  %s", formatCount(s.visible, s.total), s.sort.Label(), formatTags(s.tags))
	if s.width > 0 {
		line = truncate(line, s.width)
	}
	return s.style.Render(line)
}

// formatCount formats the visible/total count for compact display.
func formatCount(visible, total int) string {
	noun := "tools"
	if total == 1 {
		noun = "tool"
	}
	return fmt.Sprintf("%d/%d %s", visible, total, noun)
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "no tags"
	}
	return "tags: " + strings.Join(tags, " + ")
}

// truncate shortens s to width cells, ending with an ellipsis when cut.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width < 2 {
		return ""
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
