package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It processes incoming messages and returns the
// updated model and any commands to execute.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
		return m, nil
	}

	// Route messages to the tag picker overlay when active.
	if m.uiState == StateTagPicker && m.tagPicker != nil {
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
			m.closeTagPicker()
			return m, nil
		}
		form, cmd := m.tagPicker.Form().Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.tagPicker.SetForm(f)
		}
		switch {
		case m.tagPicker.IsCompleted():
			m.applyTagPick()
		case m.tagPicker.IsAborted():
			m.closeTagPicker()
		}
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, regardless of state.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.uiState {
	case StateSearch:
		return m.handleSearchKey(msg)
	case StateDetail:
		return m.handleDetailKey(msg)
	}

	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.uiState = StateSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.SwitchPanel):
		if m.panel == PanelResults && m.state.ShowCategories {
			m.panel = PanelCategories
		} else {
			m.panel = PanelResults
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Select):
		m.selectUnderCursor()

	case key.Matches(msg, m.keys.AddTag):
		m.openTagPicker(NewAddTagPicker(m.catalog.Tags(), m.state), "every tag is already selected")

	case key.Matches(msg, m.keys.RemoveTag):
		m.openTagPicker(NewRemoveTagPicker(m.state), "no tags selected")

	case key.Matches(msg, m.keys.Sort):
		m.apply("sort", m.state.SetSortOrder(m.state.Sort.Flip()))

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.apply("toggle-categories", m.state.ToggleCategoryPanel())

	case key.Matches(msg, m.keys.Reset):
		if m.state.HasFilters() {
			m.apply("reset", m.state.ResetFilters())
		}
	}

	if m.uiState == StateTagPicker {
		return m, m.tagPicker.Form().Init()
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab:
		m.search.Blur()
		m.uiState = StateBrowse
		return m, nil
	}

	cmd := m.search.Update(msg)
	if v := m.search.Value(); v != m.state.Search {
		m.toolCursor = 0
		m.apply("search", m.state.SetSearchText(v))
	}
	return m, cmd
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Back) {
		m.apply("close", m.state.CloseTool())
		m.uiState = StateBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// moveCursor moves within the focused panel. Categories form a grid, so
// horizontal moves step by one tile and vertical moves by one row.
func (m *Model) moveCursor(dx, dy int) {
	if m.panel == PanelCategories {
		n := len(m.catalog.Categories())
		if n == 0 {
			return
		}
		next := m.catCursor + dx + dy*m.categoryColumns()
		m.catCursor = min(max(next, 0), n-1)
		return
	}
	if dy == 0 || len(m.visible) == 0 {
		return
	}
	m.toolCursor = min(max(m.toolCursor+dy, 0), len(m.visible)-1)
}

func (m *Model) selectUnderCursor() {
	if m.panel == PanelCategories {
		cats := m.catalog.Categories()
		if m.catCursor < len(cats) {
			m.toolCursor = 0
			m.apply("category", m.state.ToggleCategory(cats[m.catCursor].ID))
		}
		return
	}
	if m.toolCursor < len(m.visible) {
		m.apply("open", m.state.OpenTool(m.visible[m.toolCursor].ID))
		m.showDetail()
	}
}

func (m *Model) openTagPicker(tp *TagPicker, emptyNotice string) {
	if tp == nil {
		m.notice = emptyNotice
		return
	}
	m.tagPicker = tp
	m.uiState = StateTagPicker
}

func (m *Model) applyTagPick() {
	action := "add-tag"
	if m.tagPicker.Mode() == TagPickerRemove {
		action = "remove-tag"
	}
	m.toolCursor = 0
	m.apply(action, m.tagPicker.Apply(m.state))
	m.closeTagPicker()
}

func (m *Model) closeTagPicker() {
	m.tagPicker = nil
	m.uiState = StateBrowse
}
