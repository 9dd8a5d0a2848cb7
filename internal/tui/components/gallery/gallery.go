package gallery

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/awawa/internal/assets"
	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/models"
)

const (
	cardWidth     = 24
	thumbRows     = 5
	overlayMargin = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A95C68")).
			Bold(true).
			Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("224")).
			Width(cardWidth).
			Padding(0, 1).
			Margin(0, 1)

	focusedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#A95C68"))

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A95C68")).
			Bold(true)

	fallbackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Width(cardWidth-2).
			Height(thumbRows).
			Align(lipgloss.Center, lipgloss.Center)

	closeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)
)

type imageLoadedMsg struct {
	ref   string
	image *assets.Image
}

type imageFailedMsg struct {
	ref string
}

type card struct {
	memory models.Memory
	image  *assets.Image
	failed bool
}

// previewKey names one rendered slot of an image. A card has a thumbnail
// slot and an overlay slot.
type previewKey struct {
	ref     string
	overlay bool
}

type cachedPreview struct {
	cols, rows int
	out        string
}

type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Open  key.Binding
	Close key.Binding
	Click key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev photo"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next photo"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "view full size"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "close"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "close"),
		),
	}
}

type Model struct {
	cards    []card
	cursor   int
	selected string
	loader   *assets.Loader
	keys     KeyMap
	width    int
	height   int

	// previews is shared across copies of the model so View can fill it
	previews map[previewKey]cachedPreview
}

func New(memories []models.Memory, loader *assets.Loader) Model {
	cards := make([]card, len(memories))
	for i, mem := range memories {
		cards[i] = card{memory: mem}
	}
	return Model{
		cards:    cards,
		loader:   loader,
		keys:     DefaultKeyMap(),
		previews: make(map[previewKey]cachedPreview),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init starts loading every card's image in the background
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.cards))
	for i := range m.cards {
		cmds = append(cmds, m.loadCmd(i))
	}
	return tea.Batch(cmds...)
}

func (m Model) loadCmd(i int) tea.Cmd {
	ref := m.cards[i].memory.ImageRef
	loader := m.loader
	return func() tea.Msg {
		if loader == nil {
			return imageFailedMsg{ref: ref}
		}
		img, err := loader.Load(ref)
		if err != nil {
			return imageFailedMsg{ref: ref}
		}
		return imageLoadedMsg{ref: ref, image: img}
	}
}

// SelectImage opens the full-size overlay for ref
func (m *Model) SelectImage(ref string) {
	m.selected = ref
}

// CloseImage dismisses the overlay
func (m *Model) CloseImage() {
	m.selected = ""
}

// ImageLoadFailed marks every card showing ref as broken. There is no
// way back: a failed card keeps its fallback until the gallery is unmounted.
func (m *Model) ImageLoadFailed(ref string) {
	for i := range m.cards {
		if m.cards[i].memory.ImageRef == ref {
			m.cards[i].failed = true
			m.cards[i].image = nil
		}
	}
	m.forget(ref)
}

func (m *Model) imageLoaded(ref string, img *assets.Image) {
	for i := range m.cards {
		if m.cards[i].memory.ImageRef == ref && !m.cards[i].failed {
			m.cards[i].image = img
		}
	}
	m.forget(ref)
}

func (m Model) forget(ref string) {
	delete(m.previews, previewKey{ref: ref})
	delete(m.previews, previewKey{ref: ref, overlay: true})
}

// preview renders c's image at cols x rows, reusing the last rendering of
// the same slot while the size is unchanged
func (m Model) preview(c *card, overlay bool, cols, rows int) string {
	k := previewKey{ref: c.memory.ImageRef, overlay: overlay}
	if p, ok := m.previews[k]; ok && p.cols == cols && p.rows == rows {
		return p.out
	}
	out := assets.Preview(c.image.Img, cols, rows)
	if m.previews != nil {
		m.previews[k] = cachedPreview{cols: cols, rows: rows, out: out}
	}
	return out
}

// Selected returns the reference shown in the overlay, or "" when closed
func (m Model) Selected() string {
	return m.selected
}

// OverlayOpen reports whether the full-size view is showing
func (m Model) OverlayOpen() bool {
	return m.selected != ""
}

// Failed reports whether the card at index i fell back to text
func (m Model) Failed(i int) bool {
	return i >= 0 && i < len(m.cards) && m.cards[i].failed
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case imageLoadedMsg:
		m.imageLoaded(msg.ref, msg.image)
	case imageFailedMsg:
		m.ImageLoadFailed(msg.ref)
	case tea.KeyMsg:
		if m.OverlayOpen() {
			// The overlay covers the page: its close control and its
			// backdrop both dismiss it, nothing else gets through.
			if key.Matches(msg, m.keys.Close, m.keys.Click) {
				m.CloseImage()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.cards)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			if len(m.cards) > 0 {
				m.SelectImage(m.cards[m.cursor].memory.ImageRef)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	rendered := make([]string, len(m.cards))
	for i := range m.cards {
		c := &m.cards[i]
		style := cardStyle
		if i == m.cursor {
			style = focusedCardStyle
		}
		rendered[i] = style.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.thumbnail(&m.cards[i]),
			"",
			cardTitleStyle.Render(c.memory.Title),
			c.memory.Description,
		))
	}

	perRow := 4
	if m.width > 0 {
		perRow = max(1, m.width/(cardWidth+6))
	}
	var rows []string
	for start := 0; start < len(rendered); start += perRow {
		end := min(start+perRow, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Our Memory"),
		strings.Join(rows, "\n"),
	)
}

func (m Model) thumbnail(c *card) string {
	switch {
	case c.failed:
		return fallbackStyle.Render(constants.ImageNotFoundText)
	case c.image == nil:
		return fallbackStyle.Render("Loading…")
	default:
		return lipgloss.PlaceHorizontal(cardWidth-2, lipgloss.Center,
			m.preview(c, false, cardWidth-2, thumbRows))
	}
}

// Overlay renders the full-size viewer for the selected image
func (m Model) Overlay(width, height int) string {
	var c *card
	for i := range m.cards {
		if m.cards[i].memory.ImageRef == m.selected {
			c = &m.cards[i]
			break
		}
	}

	cols := max(1, width-overlayMargin*2)
	rows := max(1, height-overlayMargin)

	var body string
	switch {
	case c == nil || c.failed:
		body = constants.ImageNotFoundText
	case c.image == nil:
		body = "Loading…"
	default:
		body = m.preview(c, true, cols, rows)
	}

	return lipgloss.JoinVertical(lipgloss.Right,
		closeStyle.Render("✕  [esc]"),
		"",
		lipgloss.PlaceHorizontal(cols, lipgloss.Center, body),
	)
}
