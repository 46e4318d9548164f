package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wallie/wallie/internal/countries"
	"github.com/wallie/wallie/internal/logging"
	"github.com/wallie/wallie/internal/theme"
)

const signUpScreenName = "signup"

// focusTarget is a focusable control on the sign-up form, in tab order
type focusTarget int

const (
	focusHeader focusTarget = iota
	focusName
	focusCode
	focusPhone
	focusPassword
	focusEye
	focusContinue
	focusCount
)

// NavigateMsg asks the application to leave the current screen.
// It carries no form data.
type NavigateMsg struct {
	Destination string
}

// countriesLoadedMsg delivers the directory load to the screen that started it
type countriesLoadedMsg struct {
	session uuid.UUID
	result  countries.LoadResult
}

// SignUpOptions configures a sign-up screen
type SignUpOptions struct {
	Source      countries.Fetcher // Directory source, usually *countries.Client
	DefaultCode string            // Selected after load when present
	Destination string            // Target of the Continue button
	Tokens      theme.Tokens
}

// SignUpModel is the sign-up form screen
type SignUpModel struct {
	State SignUpState

	// Load lifecycle: one fetch per screen, bound to session and cancel
	session uuid.UUID
	cancel  context.CancelFunc
	loadCmd tea.Cmd
	closed  bool

	destination string

	// Widgets
	Focus         focusTarget
	NameInput     textinput.Model
	PhoneInput    textinput.Model
	PasswordInput textinput.Model
	picker        list.Model

	// UI state
	Width      int
	Height     int
	tokens     theme.Tokens
	styles     theme.Styles
	help       help.Model
	formKeys   formKeyMap
	pickerKeys pickerKeyMap
}

// NewSignUpModel creates the screen. The directory fetch does not start
// until the Bubble Tea runtime executes Init's command.
func NewSignUpModel(opts SignUpOptions) SignUpModel {
	if opts.DefaultCode == "" {
		opts.DefaultCode = countries.DefaultCode
	}
	styles := theme.NewStyles(opts.Tokens)

	nameInput := textinput.New()
	nameInput.Placeholder = "Enter Full Name"
	nameInput.Prompt = ""
	nameInput.CharLimit = 100
	nameInput.Width = opts.Tokens.Sizes.InputWidth

	phoneInput := textinput.New()
	phoneInput.Placeholder = "Enter Phone Number"
	phoneInput.Prompt = ""
	phoneInput.CharLimit = 20
	phoneInput.Width = opts.Tokens.Sizes.InputWidth - opts.Tokens.Sizes.CodeWidth - 1

	passwordInput := textinput.New()
	passwordInput.Placeholder = "Enter Password"
	passwordInput.Prompt = ""
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '•'
	passwordInput.CharLimit = 128
	passwordInput.Width = opts.Tokens.Sizes.InputWidth - 3

	session := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	m := SignUpModel{
		State:         NewSignUpState(),
		session:       session,
		cancel:        cancel,
		loadCmd:       loadCountriesCmd(ctx, session, opts.Source, opts.DefaultCode),
		destination:   opts.Destination,
		Focus:         focusName,
		NameInput:     nameInput,
		PhoneInput:    phoneInput,
		PasswordInput: passwordInput,
		picker:        newPicker(opts.Tokens, styles),
		tokens:        opts.Tokens,
		styles:        styles,
		help:          help.New(),
		formKeys:      newFormKeyMap(),
		pickerKeys:    newPickerKeyMap(),
	}
	m.NameInput.Focus()

	return m
}

// loadCountriesCmd runs the one directory load of a screen
func loadCountriesCmd(ctx context.Context, session uuid.UUID, src countries.Fetcher, defaultCode string) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return countriesLoadedMsg{session: session, result: countries.LoadResult{Selected: -1}}
		}
		return countriesLoadedMsg{
			session: session,
			result:  countries.Load(ctx, src, defaultCode),
		}
	}
}

// Init starts the directory load
func (m SignUpModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd, textinput.Blink)
}

// Close tears the screen down. An in-flight load is canceled and any late
// completion is ignored.
func (m *SignUpModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.cancel != nil {
		m.cancel()
	}
}

// Closed reports whether Close has been called
func (m SignUpModel) Closed() bool {
	return m.closed
}

// Update handles messages and updates the model
func (m SignUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.picker.SetSize(m.tokens.ModalWidth(msg.Width)-6, m.tokens.Sizes.ModalHeight)
		return m, nil

	case countriesLoadedMsg:
		return m.handleLoaded(msg)

	case tea.KeyMsg:
		if m.State.ModalOpen {
			return m.updatePicker(msg)
		}
		return m.updateForm(msg)
	}

	// Filter results and filter cursor blinks belong to the open picker
	if m.State.ModalOpen {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	// Cursor blink and other widget messages go to the focused input
	return m.updateFocusedInput(msg)
}

func (m SignUpModel) handleLoaded(msg countriesLoadedMsg) (tea.Model, tea.Cmd) {
	if m.closed || msg.session != m.session {
		logging.LogScreenEvent(signUpScreenName, "stale_load_ignored")
		return m, nil
	}

	if msg.result.Err != nil {
		// Failures stay invisible: empty picker, no selection.
		logging.LogScreenEvent(signUpScreenName, "countries_unavailable", zap.Error(msg.result.Err))
	}

	m.State = m.State.ApplyLoad(msg.result)
	cmd := m.picker.SetItems(countryItems(m.State.Countries))
	return m, cmd
}

// updateForm handles keyboard input while the modal is closed
func (m SignUpModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.formKeys.Next):
		return m, m.setFocus((m.Focus + 1) % focusCount)

	case key.Matches(msg, m.formKeys.Prev):
		return m, m.setFocus((m.Focus + focusCount - 1) % focusCount)

	case key.Matches(msg, m.formKeys.Activate):
		return m.activate()
	}

	return m.updateFocusedInput(msg)
}

// activate presses the focused control
func (m SignUpModel) activate() (tea.Model, tea.Cmd) {
	switch m.Focus {
	case focusHeader:
		return m.onHeaderPressed()
	case focusCode:
		return m.onCodeButtonPressed()
	case focusEye:
		return m.onPasswordTogglePressed()
	case focusContinue:
		return m.onContinuePressed()
	default:
		// Enter in a text field moves on, like a keyboard's next key
		return m, m.setFocus(m.Focus + 1)
	}
}

func (m SignUpModel) onHeaderPressed() (tea.Model, tea.Cmd) {
	logging.Debug("Sign up", zap.String("screen", signUpScreenName))
	return m, nil
}

func (m SignUpModel) onCodeButtonPressed() (tea.Model, tea.Cmd) {
	m.State = m.State.OpenPicker()
	m.picker.ResetFilter()
	logging.LogScreenEvent(signUpScreenName, "picker_opened", zap.Int("countries", len(m.State.Countries)))
	return m, nil
}

func (m SignUpModel) onPasswordTogglePressed() (tea.Model, tea.Cmd) {
	m.State = m.State.TogglePassword()
	m.syncPasswordEcho()
	return m, nil
}

func (m SignUpModel) onContinuePressed() (tea.Model, tea.Cmd) {
	destination := m.destination
	return m, func() tea.Msg {
		return NavigateMsg{Destination: destination}
	}
}

// updatePicker handles keyboard input while the modal is open
func (m SignUpModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While typing a filter the list owns enter and esc
	if m.picker.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.pickerKeys.Dismiss):
		m.State = m.State.DismissPicker()
		m.picker.ResetFilter()
		logging.LogScreenEvent(signUpScreenName, "picker_dismissed")
		return m, nil

	case key.Matches(msg, m.pickerKeys.Select):
		item, ok := m.picker.SelectedItem().(countryItem)
		if !ok {
			return m, nil
		}
		m.State = m.State.SelectCountry(item.index)
		m.picker.ResetFilter()
		logging.LogScreenEvent(signUpScreenName, "country_selected", zap.String("code", item.country.Code))
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// setFocus moves focus to target, focusing the matching text input
func (m *SignUpModel) setFocus(target focusTarget) tea.Cmd {
	m.Focus = target % focusCount

	m.NameInput.Blur()
	m.PhoneInput.Blur()
	m.PasswordInput.Blur()

	switch m.Focus {
	case focusName:
		return m.NameInput.Focus()
	case focusPhone:
		return m.PhoneInput.Focus()
	case focusPassword:
		return m.PasswordInput.Focus()
	}
	return nil
}

// updateFocusedInput forwards msg to the focused text input, if any
func (m SignUpModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Focus {
	case focusName:
		m.NameInput, cmd = m.NameInput.Update(msg)
	case focusPhone:
		if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyRunes {
			k.Runes = phoneRunes(k.Runes)
			if len(k.Runes) == 0 {
				return m, nil
			}
			msg = k
		}
		m.PhoneInput, cmd = m.PhoneInput.Update(msg)
	case focusPassword:
		m.PasswordInput, cmd = m.PasswordInput.Update(msg)
	}
	return m, cmd
}

// phoneRunes keeps the characters a numeric keypad can enter: digits,
// spaces and dashes
func phoneRunes(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if (r >= '0' && r <= '9') || r == ' ' || r == '-' {
			out = append(out, r)
		}
	}
	return out
}

func (m *SignUpModel) syncPasswordEcho() {
	if m.State.PasswordVisible {
		m.PasswordInput.EchoMode = textinput.EchoNormal
	} else {
		m.PasswordInput.EchoMode = textinput.EchoPassword
	}
}

// View renders the screen, with the modal on top when it is open
func (m SignUpModel) View() string {
	if m.State.ModalOpen {
		return m.renderPickerModal()
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderLogo(),
		m.renderForm(),
		m.renderButton(),
	)
	return RenderApplicationContainer(m.tokens, m.styles.Screen.Render(body), m.help.View(m.formKeys), m.Width, m.Height)
}

func (m SignUpModel) renderHeader() string {
	text := m.tokens.Icons.Back + "  Sign Up"
	if m.Focus == focusHeader {
		return m.styles.HeaderFocused.Render(text)
	}
	return m.styles.Header.Render(text)
}

func (m SignUpModel) renderLogo() string {
	return m.styles.Logo.Render(m.tokens.Icons.Logo)
}

func (m SignUpModel) renderForm() string {
	name := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.InputLabel.Render("Full Name"),
		m.inputStyle(focusName).Render(m.NameInput.View()),
	)

	phoneRow := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		m.renderCodeButton(),
		m.inputStyle(focusPhone).Width(m.PhoneInput.Width+1).Render(m.PhoneInput.View()),
	)
	phone := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.InputLabel.Render("Phone Number"),
		phoneRow,
	)

	passwordRow := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.inputStyle(focusPassword).Width(m.PasswordInput.Width+1).Render(m.PasswordInput.View()),
		m.renderEyeToggle(),
	)
	password := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.InputLabel.Render("Password"),
		passwordRow,
	)

	return lipgloss.JoinVertical(lipgloss.Left, name, phone, password)
}

// renderCodeButton shows chevron, flag and calling code. Both are blank
// until a country is selected.
func (m SignUpModel) renderCodeButton() string {
	parts := []string{m.tokens.Icons.Down}
	if c, ok := m.State.SelectedCountry(); ok {
		if flag := c.Flag(); flag != "" {
			parts = append(parts, flag)
		}
		parts = append(parts, c.CallingCode)
	}
	label := strings.Join(parts, " ")

	if m.Focus == focusCode {
		return m.styles.CountryCodeFocused.Render(label)
	}
	return m.styles.CountryCode.Render(label)
}

func (m SignUpModel) renderEyeToggle() string {
	icon := m.tokens.Icons.Eye
	if m.State.PasswordVisible {
		icon = m.tokens.Icons.EyeOff
	}
	if m.Focus == focusEye {
		return m.styles.EyeToggleFocused.Render(icon)
	}
	return m.styles.EyeToggle.Render(icon)
}

func (m SignUpModel) renderButton() string {
	if m.Focus == focusContinue {
		return m.styles.ButtonFocused.Render("Continue")
	}
	return m.styles.Button.Render("Continue")
}

func (m SignUpModel) inputStyle(target focusTarget) lipgloss.Style {
	if m.Focus == target {
		return m.styles.InputFocused
	}
	return m.styles.Input
}
