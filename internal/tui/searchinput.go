package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/petrotech/petrotech/internal/output"
)

// SearchInput wraps a bubbles textinput.Model for the catalog search box.
// Enter and esc are handled by the parent Model, which leaves search mode.
type SearchInput struct {
	input textinput.Model
}

// NewSearchInput creates an unfocused single-line search box.
func NewSearchInput() *SearchInput {
	ti := textinput.New()
	ti.Placeholder = output.SearchPlaceholder
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.Width = 60
	return &SearchInput{input: ti}
}

// Value returns the current text content.
func (s *SearchInput) Value() string {
	return s.input.Value()
}

// SetValue replaces the text content.
func (s *SearchInput) SetValue(v string) {
	s.input.SetValue(v)
}

// SetWidth sets the visible width of the input.
func (s *SearchInput) SetWidth(w int) {
	s.input.Width = max(w, 10)
}

// Update delegates a message to the textinput and returns any command.
func (s *SearchInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the textinput.
func (s *SearchInput) View() string {
	return s.input.View()
}

// Focus gives the textinput focus.
func (s *SearchInput) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes focus from the textinput.
func (s *SearchInput) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has focus.
func (s *SearchInput) Focused() bool {
	return s.input.Focused()
}
