package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/logger"
	"github.com/julianstephens/awawa/internal/tui/components/datenight"
)

var jumpTabs = map[string]int{"1": 0, "2": 1, "3": 2, "4": 3, "5": 4}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsError = false
		}

	case datenight.LinkOpenedMsg:
		if msg.Err != nil {
			logger.Warn("failed to open link", "url", msg.URL, "error", msg.Err)
			cmd = m.setStatus(fmt.Sprintf("Could not open browser: %v", msg.Err), true)
		} else {
			cmd = m.setStatus("Opened in your browser ♥", false)
		}

	case datenight.LinkCopiedMsg:
		if msg.Err != nil {
			logger.Warn("failed to copy link", "url", msg.URL, "error", msg.Err)
			cmd = m.setStatus(fmt.Sprintf("Could not copy link: %v", msg.Err), true)
		} else {
			cmd = m.setStatus("Link copied to clipboard", false)
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		cmd = m.updateSection(msg)
	}

	m.layout()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}

	// An open overlay owns the keyboard
	if m.overlayOpen() {
		return m.updateSection(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Tab):
		return m.cycleTab(1)
	case key.Matches(msg, m.keys.ShiftTab):
		return m.cycleTab(-1)
	case key.Matches(msg, m.keys.Jump):
		if i, ok := jumpTabs[msg.String()]; ok && i < len(m.catalog.Tabs) {
			return m.SelectTab(m.catalog.Tabs[i].ID)
		}
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	default:
		return m.updateSection(msg)
	}
	return nil
}

// updateSection hands msg to the active section only
func (m *Model) updateSection(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.section() {
	case constants.TabMemories:
		m.galleryModel, cmd = m.galleryModel.Update(msg)
	case constants.TabNotes:
		m.notesModel, cmd = m.notesModel.Update(msg)
	case constants.TabReasons:
		m.reasonsModel, cmd = m.reasonsModel.Update(msg)
	case constants.TabDate:
		m.dateModel, cmd = m.dateModel.Update(msg)
	default:
		m.countdownModel, cmd = m.countdownModel.Update(msg)
	}
	return cmd
}

// layout sizes the content viewport to what the chrome leaves over and
// refreshes its content
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w, h := m.sectionSize()
	m.viewport.Width = m.width
	m.viewport.Height = h
	switch m.section() {
	case constants.TabMemories:
		m.galleryModel.SetSize(w, h)
	case constants.TabNotes:
		m.notesModel.SetSize(w, h)
	case constants.TabReasons:
		m.reasonsModel.SetSize(w, h)
	case constants.TabDate:
		m.dateModel.SetSize(w, h)
	default:
		m.countdownModel.SetSize(w, h)
	}
	m.viewport.SetContent(m.viewSection())
}

func (m Model) sectionSize() (int, int) {
	if m.width == 0 || m.height == 0 {
		return 0, 0
	}
	return max(0, m.width-docStyle.GetHorizontalFrameSize()), max(1, m.height-m.chromeHeight())
}
