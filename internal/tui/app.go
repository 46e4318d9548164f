package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wallie/wallie/internal/logging"
	"github.com/wallie/wallie/internal/theme"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenSignUp Screen = "signup"
	ScreenHome   Screen = "home"
)

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	// Current screen state
	CurrentScreen  Screen
	PreviousScreen Screen

	// Screen models
	SignUp SignUpModel
	Home   HomeModel

	// UI state
	Width  int
	Height int

	tokens theme.Tokens
}

// NewAppModel creates the application starting at the sign-up screen
func NewAppModel(opts SignUpOptions) AppModel {
	return AppModel{
		CurrentScreen: ScreenSignUp,
		SignUp:        NewSignUpModel(opts),
		tokens:        opts.Tokens,
	}
}

// Init initializes the current screen
func (m AppModel) Init() tea.Cmd {
	switch m.CurrentScreen {
	case ScreenSignUp:
		return m.SignUp.Init()
	case ScreenHome:
		return m.Home.Init()
	default:
		return nil
	}
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Propagate to all screens
		updated, _ := m.SignUp.Update(msg)
		m.SignUp = updated.(SignUpModel)
		m.Home.Width = msg.Width
		m.Home.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			m.SignUp.Close()
			return m, tea.Quit
		}

	case NavigateMsg:
		return m.navigate(msg.Destination)
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenSignUp:
		updated, c := m.SignUp.Update(msg)
		m.SignUp = updated.(SignUpModel)
		cmd = c

	case ScreenHome:
		updated, c := m.Home.Update(msg)
		m.Home = updated.(HomeModel)
		cmd = c
	}

	return m, cmd
}

// navigate leaves the sign-up screen for destination. The sign-up screen is
// closed so a pending directory load can never land after it is gone.
func (m AppModel) navigate(destination string) (tea.Model, tea.Cmd) {
	if m.CurrentScreen != ScreenSignUp {
		return m, nil
	}

	m.SignUp.Close()
	logging.LogNavigation(string(m.CurrentScreen), destination)

	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = ScreenHome

	m.Home = NewHomeModel(m.tokens, destination)
	m.Home.Width = m.Width
	m.Home.Height = m.Height

	return m, m.Home.Init()
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenSignUp:
		return m.SignUp.View()
	case ScreenHome:
		return m.Home.View()
	default:
		return "Unknown screen"
	}
}
