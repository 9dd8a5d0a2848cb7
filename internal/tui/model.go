package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/awawa/internal/assets"
	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/content"
	"github.com/julianstephens/awawa/internal/launcher"
	"github.com/julianstephens/awawa/internal/logger"
	"github.com/julianstephens/awawa/internal/tui/components/countdown"
	"github.com/julianstephens/awawa/internal/tui/components/datenight"
	"github.com/julianstephens/awawa/internal/tui/components/gallery"
	"github.com/julianstephens/awawa/internal/tui/components/notes"
	"github.com/julianstephens/awawa/internal/tui/components/reasons"
	"github.com/julianstephens/awawa/internal/validation"
)

// Deps carries everything the UI reads from or hands work to
type Deps struct {
	Catalog content.Catalog
	Target  time.Time
	Loader  *assets.Loader
	Opener  launcher.Opener
	Copier  launcher.Copier
	Clock   func() time.Time // nil means time.Now
}

type statusClearMsg struct {
	seq int
}

type Model struct {
	deps      Deps
	catalog   content.Catalog
	activeTab constants.TabID
	keys      KeyMap
	help      help.Model
	viewport  viewport.Model

	// Only the section for the active tab is live. The others are
	// rebuilt from the catalog when their tab is selected again.
	countdownModel countdown.Model
	galleryModel   gallery.Model
	notesModel     notes.Model
	reasonsModel   reasons.Model
	dateModel      datenight.Model

	initCmd           tea.Cmd
	status            string
	statusIsError     bool
	statusSeq         int
	validationWarning string
	quitting          bool
	width             int
	height            int
}

func NewModel(deps Deps) Model {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	m := Model{
		deps:      deps,
		catalog:   deps.Catalog,
		activeTab: constants.TabCountdown,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		viewport:  viewport.New(0, 0),
	}
	// Init runs on a copy of the model, so the first mount happens here
	// where the timer id sticks.
	m.initCmd = m.mountSection()

	m.updateValidationStatus()

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := m.keys.ShortHelp()
	switch m.section() {
	case constants.TabMemories:
		keys = append(keys, m.keys.Left, m.keys.Right, m.keys.Enter)
	case constants.TabNotes, constants.TabReasons:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Enter)
	case constants.TabDate:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Copy)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	groups := m.keys.FullHelp()

	var actions []key.Binding
	switch m.section() {
	case constants.TabMemories:
		actions = []key.Binding{m.keys.Close}
	case constants.TabDate:
		actions = []key.Binding{m.keys.Copy, m.keys.Close}
	}

	if len(actions) > 0 {
		groups = append(groups, actions)
	}
	return groups
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// ActiveTab returns the selected tab id as given to SelectTab
func (m Model) ActiveTab() constants.TabID {
	return m.activeTab
}

// section resolves the active tab to the section actually shown.
// Unknown ids fall back to the countdown.
func (m Model) section() constants.TabID {
	if _, ok := m.catalog.Tab(m.activeTab); ok {
		return m.activeTab
	}
	return constants.TabCountdown
}

// SelectTab switches sections. The outgoing section is unmounted and the
// incoming one is built fresh, so section state does not survive a switch.
func (m *Model) SelectTab(id constants.TabID) tea.Cmd {
	m.unmountSection()
	m.activeTab = id
	logger.Debug("tab selected", "tab", id, "section", m.section())
	cmd := m.mountSection()
	m.layout()
	m.viewport.GotoTop()
	return cmd
}

func (m *Model) unmountSection() {
	if m.section() == constants.TabCountdown {
		m.countdownModel.Unmount()
	}
}

func (m Model) subtitle(id constants.TabID) string {
	tab, _ := m.catalog.Tab(id)
	return tab.Subtitle
}

func (m *Model) mountSection() tea.Cmd {
	w, h := m.sectionSize()
	switch m.section() {
	case constants.TabMemories:
		m.galleryModel = gallery.New(m.catalog.Memories, m.deps.Loader)
		m.galleryModel.SetSize(w, h)
		return m.galleryModel.Init()
	case constants.TabNotes:
		m.notesModel = notes.New(m.catalog.Notes)
		m.notesModel.SetSize(w, h)
		m.notesModel.SetSubtitle(m.subtitle(constants.TabNotes))
	case constants.TabReasons:
		m.reasonsModel = reasons.New(m.catalog.Reasons)
		m.reasonsModel.SetSize(w, h)
		m.reasonsModel.SetSubtitle(m.subtitle(constants.TabReasons))
	case constants.TabDate:
		m.dateModel = datenight.New(m.catalog.DateIdeas, m.catalog.Games, m.deps.Opener, m.deps.Copier)
		m.dateModel.SetSize(w, h)
		m.dateModel.SetSubtitle(m.subtitle(constants.TabDate))
	default:
		m.countdownModel = countdown.New(m.deps.Target, countdown.WithClock(m.deps.Clock))
		m.countdownModel.SetSize(w, h)
		return m.countdownModel.Mount()
	}
	return nil
}

func (m *Model) cycleTab(step int) tea.Cmd {
	tabs := m.catalog.Tabs
	if len(tabs) == 0 {
		return nil
	}
	current := 0
	for i, t := range tabs {
		if t.ID == m.section() {
			current = i
			break
		}
	}
	next := (current + step + len(tabs)) % len(tabs)
	return m.SelectTab(tabs[next].ID)
}

// overlayOpen reports whether the active section is showing a modal
func (m Model) overlayOpen() bool {
	switch m.section() {
	case constants.TabMemories:
		return m.galleryModel.OverlayOpen()
	case constants.TabDate:
		return m.dateModel.OverlayOpen()
	}
	return false
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusIsError = isErr
	seq := m.statusSeq
	return tea.Tick(constants.StatusMessageTTL, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// updateValidationStatus checks the catalog and logs anything wrong with it
func (m *Model) updateValidationStatus() {
	result := validation.New().ValidateCatalog(m.catalog)
	for _, c := range result.Conflicts {
		logger.Warn("catalog conflict", "type", c.Type, "description", c.Description)
	}
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}
