package notes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/awawa/internal/models"
)

const defaultWrap = 60

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A95C68")).
			Bold(true).
			Padding(1, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true).
			PaddingLeft(2).
			PaddingBottom(1)

	noteStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedNoteStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("#A95C68")).
				Foreground(lipgloss.Color("#A95C68")).
				Bold(true)

	plainContentStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("252"))
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open/close"),
		),
	}
}

type Model struct {
	notes    []models.Note
	cursor   int
	openID   string
	subtitle string
	keys     KeyMap
	renderer *glamour.TermRenderer
	width    int
	height   int
}

func New(notes []models.Note) Model {
	m := Model{
		notes: notes,
		keys:  DefaultKeyMap(),
	}
	m.renderer = newRenderer(defaultWrap)
	return m
}

// newRenderer returns nil when glamour cannot build a renderer; content
// is then shown as plain text.
func newRenderer(wrap int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

func (m *Model) SetSize(width, height int) {
	if width != m.width && width > 0 {
		m.renderer = newRenderer(min(defaultWrap, max(20, width-8)))
	}
	m.width = width
	m.height = height
}

// SetSubtitle sets the line shown under the section title
func (m *Model) SetSubtitle(s string) {
	m.subtitle = s
}

// Toggle closes id if it is open, otherwise opens it and closes whatever
// was open before.
func (m *Model) Toggle(id string) {
	if m.openID == id {
		m.openID = ""
		return
	}
	m.openID = id
}

// OpenID returns the open note's id, or "" when every note is closed
func (m Model) OpenID() string {
	return m.openID
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.notes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.notes) > 0 {
				m.Toggle(m.notes[m.cursor].ID)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Love Notes"))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(subtitleStyle.Render(m.subtitle))
		b.WriteString("\n")
	}

	for i, note := range m.notes {
		marker := "▸ "
		if note.ID == m.openID {
			marker = "▾ "
		}
		if i == m.cursor {
			b.WriteString(selectedNoteStyle.Render(marker + note.Title))
		} else {
			b.WriteString(noteStyle.Render(marker + note.Title))
		}
		b.WriteString("\n")

		if note.ID == m.openID {
			b.WriteString(m.renderContent(note.Content))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderContent(content string) string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(content); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return plainContentStyle.Render(content)
}
