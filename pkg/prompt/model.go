package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/here/pkg/output/styles"
)

// DefaultPageSize is how many options are visible at once
const DefaultPageSize = 10

// Model is a single-choice list picker
type Model struct {
	message  string
	options  []string
	cursor   int
	offset   int
	pageSize int
	chosen   int
	done     bool
	keys     keyMap
	styles   viewStyles
}

type viewStyles struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	option   lipgloss.Style
	help     lipgloss.Style
}

func newViewStyles(r *lipgloss.Renderer) viewStyles {
	return viewStyles{
		title:    styles.GetStyleFor(r, styles.PromptTitle),
		cursor:   styles.GetStyleFor(r, styles.Cursor),
		selected: styles.GetStyleFor(r, styles.Selected),
		option:   styles.GetStyleFor(r, styles.Option),
		help:     styles.GetStyleFor(r, styles.Help),
	}
}

// NewModel builds a picker over options. A pageSize below one means
// DefaultPageSize.
func NewModel(message string, options []string, pageSize int, r *lipgloss.Renderer) Model {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Model{
		message:  message,
		options:  options,
		pageSize: pageSize,
		chosen:   -1,
		keys:     defaultKeyMap(),
		styles:   newViewStyles(r),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and finishes on choose or abort
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Choose):
		if len(m.options) > 0 {
			m.chosen = m.cursor
		}
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.move(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.move(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.move(-m.pageSize)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.move(m.pageSize)
	case key.Matches(keyMsg, m.keys.Home):
		m.move(-len(m.options))
	case key.Matches(keyMsg, m.keys.End):
		m.move(len(m.options))
	}
	return m, nil
}

// move shifts the cursor by delta, clamped, and scrolls the window so the
// cursor stays visible
func (m *Model) move(delta int) {
	if len(m.options) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.options)-1, m.cursor+delta))
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.pageSize {
		m.offset = m.cursor - m.pageSize + 1
	}
}

// View renders the title, the visible options and a help line
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.message))
	b.WriteString("\n")

	end := min(len(m.options), m.offset+m.pageSize)
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> "))
			b.WriteString(m.styles.selected.Render(m.options[i]))
		} else {
			b.WriteString("  ")
			b.WriteString(m.styles.option.Render(m.options[i]))
		}
		b.WriteString("\n")
	}

	if len(m.options) > m.pageSize {
		b.WriteString(m.styles.help.Render(fmt.Sprintf("  (%d/%d)", m.cursor+1, len(m.options))))
		b.WriteString("\n")
	}

	help := make([]string, 0, 4)
	for _, binding := range m.keys.shortHelp() {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(m.styles.help.Render(strings.Join(help, " • ")))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the chosen option, or false if the user skipped
func (m Model) Choice() (string, bool) {
	if m.chosen < 0 || m.chosen >= len(m.options) {
		return "", false
	}
	return m.options[m.chosen], true
}

// Cursor returns the highlighted index
func (m Model) Cursor() int {
	return m.cursor
}
