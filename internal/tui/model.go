package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/petrotech/petrotech/internal/catalog"
	"github.com/petrotech/petrotech/internal/filter"
	"github.com/petrotech/petrotech/internal/output"
	"github.com/petrotech/petrotech/internal/viewstate"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	// StateBrowse is the default state: keys drive the category and result panels.
	StateBrowse UIState = iota
	// StateSearch forwards keys to the search input.
	StateSearch
	// StateTagPicker shows the add or remove tag overlay.
	StateTagPicker
	// StateDetail shows the opened tool overlay.
	StateDetail
)

// Panel identifies which list the cursor keys move in while browsing.
type Panel int

const (
	PanelResults Panel = iota
	PanelCategories
)

// Options configure a new Model.
type Options struct {
	// Initial is the starting view state. The zero value means viewstate.New();
	// an empty Sort alone means the default order.
	Initial       viewstate.State
	MarkdownStyle string
	Logger        *zap.Logger
}

// Model is the Bubble Tea model for the catalog browser. All filtering goes
// through viewstate transitions; the model only tracks cursors and overlays.
type Model struct {
	catalog    *catalog.Catalog
	state      viewstate.State
	visible    []catalog.Tool
	keys       keyMap
	search     *SearchInput
	viewport   viewport.Model
	mdRenderer *MarkdownRenderer
	mdStyle    string
	statusBar  *StatusBar
	tagPicker  *TagPicker
	logger     *zap.Logger
	uiState    UIState
	panel      Panel
	catCursor  int
	toolCursor int
	notice     string
	width      int
	height     int
	quitting   bool
}

// Ensure Model satisfies the tea.Model interface at compile time.
var _ tea.Model = (*Model)(nil)

// NewModel creates a browser over c.
func NewModel(c *catalog.Catalog, opts Options) *Model {
	state := opts.Initial
	switch {
	case state.IsZero():
		state = viewstate.New()
	case state.Sort == "":
		state = state.SetSortOrder(filter.DefaultSortOrder)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	style := opts.MarkdownStyle
	if style == "" {
		style = "dark"
	}

	// Render falls back to raw text if the renderer is nil.
	mdRenderer, _ := NewMarkdownRenderer(76, style)

	m := &Model{
		catalog:    c,
		keys:       defaultKeyMap(),
		search:     NewSearchInput(),
		viewport:   viewport.New(80, 20),
		mdRenderer: mdRenderer,
		mdStyle:    style,
		statusBar:  NewStatusBar(80),
		logger:     logger,
		uiState:    StateBrowse,
		width:      80,
		height:     24,
	}
	m.search.SetValue(state.Search)
	m.apply("init", state)
	if _, ok := viewstate.OpenedTool(c, state); ok {
		m.showDetail()
	} else if state.Open != "" {
		m.apply("close", state.CloseTool())
	}
	return m
}

// State returns the current view state.
func (m *Model) State() viewstate.State { return m.state }

// Visible returns the tools currently listed.
func (m *Model) Visible() []catalog.Tool { return m.visible }

// UIState returns the current interaction state.
func (m *Model) UIState() UIState { return m.uiState }

// apply installs next as the current state and recomputes everything that
// derives from it.
func (m *Model) apply(action string, next viewstate.State) {
	m.state = next
	m.visible = viewstate.Visible(m.catalog, next)

	if m.toolCursor >= len(m.visible) {
		m.toolCursor = max(len(m.visible)-1, 0)
	}
	if !next.ShowCategories {
		m.panel = PanelResults
	}

	m.statusBar.SetCounts(len(m.visible), m.catalog.Len())
	m.statusBar.SetSort(next.Sort)
	m.statusBar.SetTags(next.Tags)

	m.logger.Debug("view state changed",
		zap.String("action", action),
		zap.String("query", next.Values().Encode()),
		zap.Int("visible", len(m.visible)),
	)
}

// showDetail renders the opened tool into the overlay viewport.
func (m *Model) showDetail() {
	tool, ok := viewstate.OpenedTool(m.catalog, m.state)
	if !ok {
		return
	}
	md := output.ToolMarkdown(output.NewToolDetail(m.catalog, tool))
	rendered, err := m.mdRenderer.Render(md)
	if err != nil || rendered == "" {
		rendered = md
	}
	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
	m.uiState = StateDetail
}

// overlaySize returns the detail overlay's content width and height.
func (m *Model) overlaySize() (int, int) {
	w := min(m.width-6, 84)
	h := m.height - 6
	return max(w, 20), max(h, 5)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.statusBar.SetWidth(width)
	m.search.SetWidth(width - 8)

	w, h := m.overlaySize()
	m.viewport.Width = w
	m.viewport.Height = h
	if r, err := NewMarkdownRenderer(w-4, m.mdStyle); err == nil {
		m.mdRenderer = r
	}
	if m.uiState == StateDetail {
		m.showDetail()
	}
}
