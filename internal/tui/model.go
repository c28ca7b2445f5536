// Package tui implements the interactive dashboard sign browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pbaille/dashalert/internal/catalog"
	"github.com/pbaille/dashalert/internal/domain"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// Rows taken by the title, search box, blank line and footer.
	chromeRows = 4
)

// Options configures a new browser model.
type Options struct {
	Signs    *catalog.Catalog
	DarkMode bool
	// OnToggleTheme persists a theme flip and reports the new dark mode value.
	// When nil the toggle only affects the running session.
	OnToggleTheme func() (bool, error)
}

// Model is the root bubbletea model for the sign browser.
type Model struct {
	signs    *catalog.Catalog
	visible  []domain.Category
	cursor   int
	input    textinput.Model
	detail   bool
	viewport viewport.Model
	width    int
	height   int
	dark     bool
	theme    theme
	keys     KeyMap
	toggle   func() (bool, error)
	err      error
}

// New creates a browser model showing the full catalog.
func New(opts Options) Model {
	signs := opts.Signs
	if signs == nil {
		signs = catalog.Default()
	}

	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.Placeholder = "search dashboard signs"
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		signs:    signs,
		visible:  signs.All(),
		input:    ti,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeRows),
		width:    defaultWidth,
		height:   defaultHeight,
		dark:     opts.DarkMode,
		theme:    newTheme(opts.DarkMode),
		keys:     DefaultKeyMap(),
		toggle:   opts.OnToggleTheme,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeRows, 1)
		if m.detail {
			m.refreshDetail()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.toggleTheme()
			return m, nil
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	if m.detail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if len(m.visible) == 0 {
			return m, nil
		}
		m.detail = true
		m.refreshDetail()
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.refilter()
		return m, nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.refilter()
	}
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.detail = false
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refilter() {
	m.visible = m.signs.Filter(m.input.Value())
	m.cursor = 0
}

func (m *Model) refreshDetail() {
	sign, ok := m.Selected()
	if !ok {
		return
	}
	m.viewport.SetContent(renderDetail(m.theme, sign, m.width))
}

func (m *Model) toggleTheme() {
	dark := !m.dark
	if m.toggle != nil {
		var err error
		dark, err = m.toggle()
		if err != nil {
			m.err = err
			return
		}
	}
	m.err = nil
	m.dark = dark
	m.theme = newTheme(dark)
	if m.detail {
		m.refreshDetail()
	}
}

// Query returns the current search text.
func (m Model) Query() string { return m.input.Value() }

// Visible returns the signs matching the current query.
func (m Model) Visible() []domain.Category { return m.visible }

// Selected returns the sign under the cursor.
func (m Model) Selected() (domain.Category, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return domain.Category{}, false
	}
	return m.visible[m.cursor], true
}

// InDetail reports whether the detail view is open.
func (m Model) InDetail() bool { return m.detail }

// DarkMode reports the active theme.
func (m Model) DarkMode() bool { return m.dark }

// Err returns the last error raised by a theme toggle.
func (m Model) Err() error { return m.err }

// View implements tea.Model.
func (m Model) View() string {
	if m.detail {
		return m.viewport.View() + "\n" + m.footer("esc back · ↑/↓ scroll · ctrl+t theme · ctrl+c quit")
	}

	var b strings.Builder
	b.WriteString(m.theme.title.Render("DashAlert"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(m.theme.muted.Render(fmt.Sprintf("  No dashboard signs match %q", m.input.Value())))
		b.WriteString("\n")
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		name := m.visible[i].Name
		if i == m.cursor {
			b.WriteString(m.theme.selected.Render(selectionIndicator + name))
		} else {
			b.WriteString(m.theme.row.Render(name))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.footer(fmt.Sprintf("%d/%d · enter causes · esc clear · ctrl+t theme · ctrl+c quit", len(m.visible), m.signs.Len())))
	return b.String()
}

// window returns the slice of visible rows that keeps the cursor on screen.
func (m Model) window() (int, int) {
	rows := m.height - chromeRows
	if rows <= 0 || rows >= len(m.visible) {
		return 0, len(m.visible)
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	return start, start + rows
}

func (m Model) footer(help string) string {
	if m.err != nil {
		return m.theme.footer.Render("error: " + m.err.Error())
	}
	return m.theme.footer.Render(help)
}

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
