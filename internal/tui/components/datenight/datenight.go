package datenight

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/awawa/internal/launcher"
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

	ideaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("224")).
			Padding(0, 1).
			Margin(0, 2).
			Width(48)

	focusedIdeaStyle = ideaStyle.
				BorderForeground(lipgloss.Color("#A95C68"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A95C68")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#A95C68")).
			Padding(1, 2)
)

var (
	errNoOpener = errors.New("no browser launcher available")
	errNoCopier = errors.New("no clipboard available")
)

// LinkOpenedMsg reports the result of handing a link to the browser
type LinkOpenedMsg struct {
	URL string
	Err error
}

// LinkCopiedMsg reports the result of copying a link to the clipboard
type LinkCopiedMsg struct {
	URL string
	Err error
}

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Copy     key.Binding
	Close    key.Binding
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
			key.WithHelp("enter", "choose"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

type Model struct {
	ideas        []models.DateIdea
	games        []models.Game
	cursor       int
	popupVisible bool
	form         *huh.Form
	choice       *int
	subtitle     string
	opener       launcher.Opener
	copier       launcher.Copier
	keys         KeyMap
	width        int
	height       int
}

func New(ideas []models.DateIdea, games []models.Game, opener launcher.Opener, copier launcher.Copier) Model {
	return Model{
		ideas:  ideas,
		games:  games,
		opener: opener,
		copier: copier,
		keys:   DefaultKeyMap(),
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

// Activate runs the action for the idea at index i
func (m *Model) Activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.ideas) {
		return nil
	}
	switch idea := m.ideas[i].(type) {
	case models.MovieNight:
		return m.openLink(idea.URL)
	case models.GameNight:
		return m.OpenPopup()
	default:
		return nil
	}
}

func (m Model) openLink(url string) tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		if opener == nil {
			return LinkOpenedMsg{URL: url, Err: errNoOpener}
		}
		return LinkOpenedMsg{URL: url, Err: opener.Open(url)}
	}
}

func (m Model) copyLink(url string) tea.Cmd {
	copier := m.copier
	return func() tea.Msg {
		if copier == nil {
			return LinkCopiedMsg{URL: url, Err: errNoCopier}
		}
		return LinkCopiedMsg{URL: url, Err: copier.Copy(url)}
	}
}

// OpenPopup shows the game picker
func (m *Model) OpenPopup() tea.Cmd {
	m.choice = new(int)
	m.form = newGameForm(m.games, m.choice)
	m.popupVisible = true
	return m.form.Init()
}

func newGameForm(games []models.Game, choice *int) *huh.Form {
	opts := make([]huh.Option[int], len(games))
	for i, g := range games {
		opts[i] = huh.NewOption(gameLabel(g), i)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Choose a Game").
				Options(opts...).
				Value(choice),
		),
	).WithShowHelp(false).WithTheme(huh.ThemeDracula())
}

// gameLabel is the option text for g: icon, name and its one-line pitch
func gameLabel(g models.Game) string {
	label := strings.TrimSpace(g.Icon + " " + g.Name)
	if g.Description != "" {
		label += ": " + g.Description
	}
	return label
}

// SelectGame closes the picker. The chosen game is not acted on yet.
func (m *Model) SelectGame(i int) {
	m.ClosePopup()
}

func (m *Model) ClosePopup() {
	m.popupVisible = false
	m.form = nil
	m.choice = nil
}

func (m Model) PopupVisible() bool {
	return m.popupVisible
}

// OverlayOpen reports whether the game picker is covering the page
func (m Model) OverlayOpen() bool {
	return m.popupVisible
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.popupVisible {
		return m.updatePopup(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.ideas)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Activate):
			return m, m.Activate(m.cursor)
		case key.Matches(msg, m.keys.Copy):
			if len(m.ideas) > 0 {
				if movie, ok := m.ideas[m.cursor].(models.MovieNight); ok {
					return m, m.copyLink(movie.URL)
				}
			}
		}
	}
	return m, nil
}

func (m Model) updatePopup(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Close) {
		m.ClosePopup()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.SelectGame(*m.choice)
		return m, nil
	case huh.StateAborted:
		m.ClosePopup()
		return m, nil
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Date Ideas"))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(subtitleStyle.Render(m.subtitle))
		b.WriteString("\n")
	}

	for i, idea := range m.ideas {
		style := ideaStyle
		if i == m.cursor {
			style = focusedIdeaStyle
		}

		title := categoryStyle.Render(idea.Category())
		var hint string
		switch idea := idea.(type) {
		case models.MovieNight:
			title = ansi.SetHyperlink(idea.URL) + title + ansi.ResetHyperlink()
			hint = "enter: open in browser · y: copy link"
		case models.GameNight:
			hint = "enter: pick a game"
		}

		lines := []string{title, idea.Summary()}
		if hint != "" && i == m.cursor {
			lines = append(lines, hintStyle.Render(hint))
		}
		b.WriteString(style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
		b.WriteString("\n")
	}
	return b.String()
}

// Overlay renders the game picker
func (m Model) Overlay(width, height int) string {
	if m.form == nil {
		return ""
	}
	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.form.View(),
		"",
		hintStyle.Render("enter: choose · esc: close"),
	))
}
