package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/petrotech/petrotech/internal/output"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	muted  = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// bannerStyle uses the same adaptive color scheme as the header for consistency.
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#EEEEEE"}).
			Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	taglineStyle   = lipgloss.NewStyle().Foreground(muted)
)

const highlight = "Petroleum Engineering"

// RenderHero renders the centered headline and tagline.
func RenderHero(width int) string {
	headline := bannerStyle.Render("The Best ") +
		highlightStyle.Render(highlight) +
		bannerStyle.Render(" Tools")
	block := lipgloss.JoinVertical(lipgloss.Center,
		headline,
		taglineStyle.Render(output.Tagline),
	)
	return lipgloss.PlaceHorizontal(max(width, lipgloss.Width(block)), lipgloss.Center, block)
}

// RenderHeader renders the brand, static navigation and sign-in label.
func RenderHeader(width int) string {
	left := bannerStyle.Render("⛽ " + output.Brand)
	nav := taglineStyle.Render("Collection   Category   Tags")
	right := highlightStyle.Render("[ Sign In ]")

	gap := width - lipgloss.Width(left) - lipgloss.Width(nav) - lipgloss.Width(right) - 4
	if gap < 2 {
		return left + "  " + right
	}
	half := gap / 2
	return lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("240")).
		Render(left + strings.Repeat(" ", half) + nav + strings.Repeat(" ", gap-half) + right)
}
