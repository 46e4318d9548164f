package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the named style records of the sign-up screen. Each one is a
// token combined with a layout primitive; focused variants only change
// the accent.
type Styles struct {
	Screen lipgloss.Style

	Header        lipgloss.Style
	HeaderFocused lipgloss.Style
	Logo          lipgloss.Style

	InputLabel   lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	CountryCode        lipgloss.Style
	CountryCodeFocused lipgloss.Style
	EyeToggle          lipgloss.Style
	EyeToggleFocused   lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	ModalPanel        lipgloss.Style
	ModalTitle        lipgloss.Style
	ModalItem         lipgloss.Style
	ModalItemSelected lipgloss.Style
	ModalItemMeta     lipgloss.Style

	Help lipgloss.Style
}

// FontStyle renders a typography token as a lipgloss style.
func FontStyle(f Font) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(f.Bold).Italic(f.Italic)
	if f.Uppercase {
		s = s.Transform(strings.ToUpper)
	}
	return s
}

// NewStyles composes the style records from t.
func NewStyles(t Tokens) Styles {
	pad := t.Sizes.Padding
	c := t.Colors

	underline := lipgloss.Border{Bottom: "─"}

	input := FontStyle(t.Fonts.Body3).
		Foreground(c.White).
		BorderStyle(underline).
		BorderBottom(true).
		BorderForeground(c.White).
		Width(t.Sizes.InputWidth).
		MarginBottom(pad)

	code := FontStyle(t.Fonts.Body3).
		Foreground(c.White).
		BorderStyle(underline).
		BorderBottom(true).
		BorderForeground(c.White).
		Width(t.Sizes.CodeWidth).
		MarginRight(pad)

	button := FontStyle(t.Fonts.H3).
		Foreground(c.White).
		Background(c.Black).
		Width(t.Sizes.ButtonWidth).
		Align(lipgloss.Center).
		Padding(pad, 0).
		Margin(pad*3, pad*3)

	header := FontStyle(t.Fonts.H4).
		Foreground(c.White).
		MarginTop(pad).
		PaddingLeft(pad * 2)

	item := FontStyle(t.Fonts.Body4).
		Foreground(c.Black).
		PaddingLeft(pad * 2)

	return Styles{
		Screen: lipgloss.NewStyle().
			Padding(0, pad*3),

		Header:        header,
		HeaderFocused: header.Foreground(c.Lime).Underline(true),
		Logo: lipgloss.NewStyle().
			Foreground(c.White).
			Bold(true).
			MarginTop(pad * 2).
			MarginBottom(pad).
			PaddingLeft(pad * 3),

		InputLabel: FontStyle(t.Fonts.Body3).
			Foreground(c.LightGreen),
		Input:        input,
		InputFocused: input.BorderForeground(c.Lime),

		CountryCode:        code,
		CountryCodeFocused: code.BorderForeground(c.Lime).Foreground(c.Lime),
		EyeToggle:          lipgloss.NewStyle().Foreground(c.White).PaddingLeft(pad),
		EyeToggleFocused:   lipgloss.NewStyle().Foreground(c.Lime).Bold(true).PaddingLeft(pad),

		Button:        button,
		ButtonFocused: button.Background(c.Lime).Foreground(c.Black),

		ModalPanel: lipgloss.NewStyle().
			Background(c.LightGreen).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Emerald).
			Padding(pad, pad*2),
		ModalTitle: FontStyle(t.Fonts.H4).
			Foreground(c.Black).
			MarginBottom(pad),
		ModalItem: item,
		ModalItemSelected: item.
			Foreground(c.Emerald).
			Bold(true).
			PaddingLeft(0),
		ModalItemMeta: lipgloss.NewStyle().
			Foreground(c.Gray),

		Help: lipgloss.NewStyle().
			Foreground(c.Gray).
			Padding(pad, 0, 0, pad*3),
	}
}

// ModalWidth returns the picker panel width for a terminal of the given width.
func (t Tokens) ModalWidth(terminalWidth int) int {
	w := int(float64(terminalWidth) * t.Sizes.ModalWidth)
	if w < 30 {
		w = 30
	}
	return w
}
