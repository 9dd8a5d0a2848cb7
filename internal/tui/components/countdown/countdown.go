package countdown

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/countdown"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("#A95C68")).
			Bold(true).
			Width(12).
			Padding(1, 0).
			Margin(0, 1).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("224")).
			Background(lipgloss.Color("#A95C68"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A95C68")).
			Italic(true).
			Padding(1, 0)
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is one 1 Hz tick. ID ties it to the mount that scheduled it.
type TickMsg struct {
	ID   int
	Time time.Time
}

type Model struct {
	Remaining countdown.Duration
	target    time.Time
	now       func() time.Time
	id        int // 0 while unmounted
	width     int
	height    int
}

type Option func(*Model)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

func New(target time.Time, opts ...Option) Model {
	m := Model{
		target: target,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Mount computes the countdown immediately and starts a fresh tick chain.
// Any chain left over from an earlier mount stops at its next tick.
func (m *Model) Mount() tea.Cmd {
	m.id = nextID()
	m.refresh()
	return m.tick()
}

// Unmount releases the tick chain
func (m *Model) Unmount() {
	m.id = 0
}

// Running reports whether a tick chain is owned by this display
func (m Model) Running() bool {
	return m.id != 0
}

func (m Model) ID() int {
	return m.id
}

func (m *Model) refresh() {
	m.Remaining = countdown.Remaining(m.target, m.now())
}

func (m Model) tick() tea.Cmd {
	id := m.id
	return tea.Tick(constants.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.id == 0 || msg.ID != m.id {
			return m, nil
		}
		m.refresh()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		box(m.Remaining.Days, "DAYS"),
		box(m.Remaining.Hours, "HOURS"),
		box(m.Remaining.Minutes, "MINUTES"),
		box(m.Remaining.Seconds, "SECONDS"),
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render("We will meet in:"),
		boxes,
		dateStyle.Render(m.target.Format(constants.TargetLabelFormat)+" ♥"),
	)

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	return content
}

func box(value int64, label string) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		fmt.Sprintf("%d", value),
		labelStyle.Render(label),
	))
}
