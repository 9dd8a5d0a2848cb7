package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/awawa/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("#A95C68")).
			Bold(true).
			Padding(0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("224")).
			Italic(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Padding(1, 0, 0, 0)
)

// Header renders the title bar, centered across width when width > 0
func Header(s models.Shell, width int) string {
	title := headerStyle.Render(s.IconGlyph + " " + s.Title + " " + s.IconGlyph)
	block := lipgloss.JoinVertical(lipgloss.Center, title, subtitleStyle.Render(s.Subtitle))
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
	}
	return block
}

func Footer(s models.Shell, width int) string {
	block := footerStyle.Render(lipgloss.JoinVertical(lipgloss.Center, s.Footer...))
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
	}
	return block
}
