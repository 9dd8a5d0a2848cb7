package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/tui/components/shell"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.overlayOpen() {
		return m.viewOverlay()
	}

	content := m.viewSection()
	if m.width > 0 && m.height > 0 {
		content = m.viewport.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		shell.Header(m.catalog.Shell, m.width),
		m.viewTabs(),
		content,
		m.viewStatus(),
		shell.Footer(m.catalog.Shell, m.width),
		m.help.View(m),
	)
}

// chromeHeight is the number of lines everything but the section takes up
func (m Model) chromeHeight() int {
	return lipgloss.Height(shell.Header(m.catalog.Shell, m.width)) +
		lipgloss.Height(m.viewTabs()) +
		lipgloss.Height(m.viewStatus()) +
		lipgloss.Height(shell.Footer(m.catalog.Shell, m.width)) +
		lipgloss.Height(m.help.View(m))
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, t := range m.catalog.Tabs {
		title := t.Icon + " " + t.Label
		if t.ID == m.section() {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	if m.validationWarning != "" {
		tabs = append(tabs, warningStyle.Render(m.validationWarning))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsError {
		return statusErrorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewSection() string {
	switch m.section() {
	case constants.TabMemories:
		return docStyle.Render(m.galleryModel.View())
	case constants.TabNotes:
		return docStyle.Render(m.notesModel.View())
	case constants.TabReasons:
		return docStyle.Render(m.reasonsModel.View())
	case constants.TabDate:
		return docStyle.Render(m.dateModel.View())
	default:
		return docStyle.Render(m.countdownModel.View())
	}
}

// viewOverlay covers the whole screen with the active section's modal
func (m Model) viewOverlay() string {
	var overlay string
	switch m.section() {
	case constants.TabMemories:
		overlay = m.galleryModel.Overlay(m.width, m.height)
	case constants.TabDate:
		overlay = m.dateModel.Overlay(m.width, m.height)
	}

	if m.width == 0 || m.height == 0 {
		return overlay
	}
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		overlay,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("236")),
	)
}
