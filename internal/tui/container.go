package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wallie/wallie/internal/theme"
	"github.com/wallie/wallie/internal/urls"
	"github.com/wallie/wallie/internal/version"
)

// AppName is shown in the container header
const AppName = "WALLIE"

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 48 // Narrowest layout the form fits in
	containerChrome  = 4  // Outer border plus inner padding
)

// buildHeaderContent creates header content with app name, version and project URL
func buildHeaderContent(c theme.Colors) string {
	left := lipgloss.NewStyle().
		Foreground(c.White).
		Bold(true).
		Render(AppName + " v" + version.Short())

	right := lipgloss.NewStyle().
		Foreground(c.Gray).
		Render(urls.ProjectHome)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps a screen's content in the full-screen
// panel: header, content, footer with help text.
//
// Every screen except an open modal renders through this function:
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(m.tokens, content, m.help.View(m.keys), m.Width, m.Height)
//	}
//
// Before the first tea.WindowSizeMsg the size is unknown and the content is
// returned with the footer below it, unframed.
func RenderApplicationContainer(t theme.Tokens, content, footerText string, terminalWidth, terminalHeight int) string {
	footer := lipgloss.NewStyle().Foreground(t.Colors.Gray).Render(footerText)

	if terminalWidth <= 0 || terminalHeight <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, content, footer)
	}
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	inner := terminalWidth - containerChrome

	styledHeader := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(t.Colors.Emerald).
		Width(inner).
		Padding(0, 1).
		Render(buildHeaderContent(t.Colors))

	styledFooter := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(t.Colors.Emerald).
		Width(inner).
		Padding(0, 1).
		Render(footer)

	styledContent := lipgloss.NewStyle().
		Width(inner).
		Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	// Full height keeps the footer pinned and the background solid
	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Colors.Emerald).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
