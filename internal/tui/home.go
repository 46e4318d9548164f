package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wallie/wallie/internal/theme"
)

// HomeModel is the screen reached from Continue. It only confirms arrival.
type HomeModel struct {
	Title  string
	Width  int
	Height int

	tokens theme.Tokens
	styles theme.Styles
	help   help.Model
	keys   homeKeyMap
}

// NewHomeModel creates the destination screen, titled with the
// navigation destination name
func NewHomeModel(tokens theme.Tokens, title string) HomeModel {
	if title == "" {
		title = "Home"
	}
	return HomeModel{
		Title:  title,
		tokens: tokens,
		styles: theme.NewStyles(tokens),
		help:   help.New(),
		keys:   newHomeKeyMap(),
	}
}

func (m HomeModel) Init() tea.Cmd {
	return nil
}

func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m HomeModel) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Logo.Render(m.tokens.Icons.Logo),
		m.styles.Header.Render(m.Title),
		m.styles.InputLabel.PaddingLeft(m.tokens.Sizes.Padding*2).Render("You're all set."),
	)
	return RenderApplicationContainer(m.tokens, m.styles.Screen.Render(content), m.help.View(m.keys), m.Width, m.Height)
}
