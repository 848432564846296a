package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/petrotech/petrotech/internal/catalog"
	"github.com/petrotech/petrotech/internal/output"
)

const (
	tileWidth  = 30
	cardHeight = 6
)

// Style definitions for the TUI view.
var (
	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	searchBoxFocusedStyle = searchBoxStyle.BorderForeground(accent)

	tileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tileSelectedStyle = tileStyle.BorderForeground(accent).Foreground(accent).Bold(true)
	tileCursorStyle   = tileStyle.BorderForeground(lipgloss.Color("252"))

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("240")).
			PaddingLeft(1)
	cardCursorStyle = cardStyle.BorderForeground(accent)

	chipStyle     = lipgloss.NewStyle().Foreground(muted)
	sectionStyle  = lipgloss.NewStyle().Bold(true)
	linkStyle     = lipgloss.NewStyle().Foreground(accent)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	emptyStyle    = lipgloss.NewStyle().Foreground(muted).Italic(true).Padding(1, 2)
	overlayStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"})
	helpDescStyle = lipgloss.NewStyle().Foreground(muted)
)

// View implements tea.Model. It renders the TUI as a string.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	switch m.uiState {
	case StateDetail:
		return m.renderOverlay(m.renderDetail())
	case StateTagPicker:
		if m.tagPicker != nil {
			return m.renderOverlay(m.tagPicker.Form().View())
		}
	}
	return m.renderBrowse()
}

func (m *Model) renderOverlay(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		overlayStyle.Render(content),
		lipgloss.WithWhitespaceBackground(lipgloss.Color("235")),
	)
}

func (m *Model) renderDetail() string {
	footer := helpDescStyle.Render(fmt.Sprintf("esc close · ↑/↓ scroll · %3.f%%", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m *Model) renderBrowse() string {
	top := []string{
		RenderHeader(m.width),
		RenderHero(m.width),
		m.renderSearch(),
		m.renderCategoryToggle(),
	}
	if m.state.ShowCategories {
		top = append(top, m.renderCategories())
	}
	top = append(top, m.renderFilters())
	if m.notice != "" {
		top = append(top, noticeStyle.Render(m.notice))
	}

	head := lipgloss.JoinVertical(lipgloss.Left, top...)
	footer := lipgloss.JoinVertical(lipgloss.Left, m.statusBar.View(), m.renderHelp())

	room := m.height - lipgloss.Height(head) - lipgloss.Height(footer) - 1
	return lipgloss.JoinVertical(lipgloss.Left, head, m.renderResults(room), footer)
}

func (m *Model) renderSearch() string {
	style := searchBoxStyle
	if m.search.Focused() {
		style = searchBoxFocusedStyle
	}
	return style.Width(max(m.width-4, 20)).Render("⌕ " + m.search.View())
}

func (m *Model) renderCategoryToggle() string {
	arrow := "▸"
	if m.state.ShowCategories {
		arrow = "▾"
	}
	label := sectionStyle.Render(arrow + " Categories")
	if m.panel == PanelCategories {
		label = linkStyle.Render(arrow+" Categories") + helpDescStyle.Render("  (focused)")
	}
	return label
}

// categoryColumns returns how many category tiles fit on one row.
func (m *Model) categoryColumns() int {
	return min(max(m.width/(tileWidth+4), 1), 4)
}

func (m *Model) renderCategories() string {
	cats := m.catalog.Categories()
	cols := m.categoryColumns()

	var rows []string
	for start := 0; start < len(cats); start += cols {
		var tiles []string
		for i := start; i < min(start+cols, len(cats)); i++ {
			tiles = append(tiles, m.renderTile(i, cats[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderTile(i int, c catalog.Category) string {
	style := tileStyle
	switch {
	case m.state.Category == c.ID:
		style = tileSelectedStyle
	case m.panel == PanelCategories && i == m.catCursor:
		style = tileCursorStyle
	}
	label := glyph(c.Icon) + " " + c.Name
	if m.panel == PanelCategories && i == m.catCursor {
		label = "› " + label
	}
	return style.Render(truncate(label, tileWidth-2))
}

func (m *Model) renderFilters() string {
	tags := chipStyle.Render("Select tags (t)")
	if len(m.state.Tags) > 0 {
		chips := make([]string, len(m.state.Tags))
		for i, tag := range m.state.Tags {
			chips[i] = linkStyle.Render("[" + tag + "]")
		}
		tags = strings.Join(chips, " ") + chipStyle.Render("  (t add · x remove)")
	}

	parts := []string{tags, sectionStyle.Render(m.state.Sort.Label()) + chipStyle.Render(" (s)")}
	if m.state.HasFilters() {
		parts = append(parts, linkStyle.Render("Reset Filters")+chipStyle.Render(" (r)"))
	}
	return strings.Join(parts, "   ")
}

func (m *Model) renderResults(room int) string {
	if len(m.visible) == 0 {
		return emptyStyle.Render(output.EmptyMessage)
	}

	n := max(room/cardHeight, 1)
	first := 0
	if m.toolCursor >= n {
		first = m.toolCursor - n + 1
	}
	last := min(first+n, len(m.visible))

	cards := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		cards = append(cards, m.renderCard(i, m.visible[i]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m *Model) renderCard(i int, t catalog.Tool) string {
	width := max(m.width-4, 20)
	selected := m.panel == PanelResults && i == m.toolCursor

	name := sectionStyle.Render(glyph(t.Icon) + " " + t.Name)
	if selected {
		name = linkStyle.Bold(true).Render("› " + glyph(t.Icon) + " " + t.Name)
	}
	chips := make([]string, len(t.Tags))
	for j, tag := range t.Tags {
		chips[j] = "#" + tag
	}
	meta := t.Licensing
	if t.Added != "" {
		meta += " · added " + t.Added
	}

	lines := []string{
		name,
		chipStyle.Render(truncate(strings.Join(chips, " "), width)),
		truncate(t.Description, width),
	}
	if len(t.Features) > 0 {
		lines = append(lines, truncate("Key Features: "+strings.Join(t.Features, " · "), width))
	}
	lines = append(lines, helpDescStyle.Render(meta)+linkStyle.Render("  Learn More →"))
	style := cardStyle
	if selected {
		style = cardCursorStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderHelp() string {
	var bindings []key.Binding
	if m.uiState == StateSearch {
		bindings = []key.Binding{m.keys.Back, m.keys.Select}
	} else {
		bindings = m.keys.helpLine(m.state.HasFilters(), len(m.state.Tags) > 0)
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		desc := h.Desc
		if m.uiState == StateSearch {
			desc = "done"
		}
		parts[i] = helpKeyStyle.Render(h.Key) + " " + helpDescStyle.Render(desc)
	}
	return " " + strings.Join(parts, helpDescStyle.Render(" · "))
}
