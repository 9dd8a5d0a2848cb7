package reasons

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/models"
)

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

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	cursorStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("#A95C68"))

	activeStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("#A95C68")).
			Bold(true)
)

// clearMsg ends a highlight. It only applies to the activation that
// minted token.
type clearMsg struct {
	token uuid.UUID
}

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
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
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "highlight"),
		),
	}
}

type Model struct {
	reasons []models.Reason
	cursor  int
	active  int
	token    uuid.UUID
	subtitle string
	keys     KeyMap
	width    int
	height   int
}

func New(reasons []models.Reason) Model {
	return Model{
		reasons: reasons,
		active:  -1,
		keys:    DefaultKeyMap(),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetSubtitle sets the line shown under the section title
func (m *Model) SetSubtitle(s string) {
	m.subtitle = s
}

// Activate highlights reason i and schedules its clear. A later
// activation supersedes the pending clear of an earlier one.
func (m *Model) Activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.reasons) {
		return nil
	}
	token := uuid.New()
	m.active = i
	m.token = token
	return tea.Tick(constants.ReasonHighlight, func(time.Time) tea.Msg {
		return clearMsg{token: token}
	})
}

// Active returns the highlighted index, if any
func (m Model) Active() (int, bool) {
	if m.active < 0 {
		return 0, false
	}
	return m.active, true
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMsg:
		if msg.token == m.token {
			m.active = -1
			m.token = uuid.Nil
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.reasons)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Activate):
			return m, m.Activate(m.cursor)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Reasons I Love You"))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(subtitleStyle.Render(m.subtitle))
		b.WriteString("\n")
	}

	for i, r := range m.reasons {
		line := "♥ " + r.Text
		switch {
		case i == m.active:
			b.WriteString(activeStyle.Render(line))
		case i == m.cursor:
			b.WriteString(cursorStyle.Render(line))
		default:
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
