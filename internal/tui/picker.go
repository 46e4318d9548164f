package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wallie/wallie/internal/countries"
	"github.com/wallie/wallie/internal/theme"
)

// countryItem wraps a Country for use with bubbles/list. index is the
// position in SignUpState.Countries, which survives list filtering.
type countryItem struct {
	country countries.Country
	index   int
}

// FilterValue implements list.Item
func (c countryItem) FilterValue() string {
	return countries.Fold(c.country.Name + " " + c.country.Code + " " + c.country.CallingCode)
}

// countryItems converts the directory to list items in order
func countryItems(all []countries.Country) []list.Item {
	items := make([]list.Item, len(all))
	for i, c := range all {
		items[i] = countryItem{country: c, index: i}
	}
	return items
}

// countryDelegate renders one row per country: flag, name, calling code
type countryDelegate struct {
	styles theme.Styles
	icons  theme.Icons
}

func (d countryDelegate) Height() int { return 1 }

func (d countryDelegate) Spacing() int { return 0 }

func (d countryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d countryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(countryItem)
	if !ok {
		return
	}

	flag := ci.country.Flag()
	if flag == "" {
		flag = "  "
	}
	meta := d.styles.ModalItemMeta.Render(ci.country.CallingCode)

	if index == m.Index() {
		line := fmt.Sprintf("%s %s %s", d.icons.Pointer, flag, ci.country.Name)
		fmt.Fprint(w, lipgloss.JoinHorizontal(lipgloss.Top, d.styles.ModalItemSelected.Render(line), " ", meta))
		return
	}

	line := fmt.Sprintf("%s %s", flag, ci.country.Name)
	fmt.Fprint(w, lipgloss.JoinHorizontal(lipgloss.Top, d.styles.ModalItem.Render(line), " ", meta))
}

// newPicker builds the list backing the calling code modal
func newPicker(tokens theme.Tokens, styles theme.Styles) list.Model {
	delegate := countryDelegate{styles: styles, icons: tokens.Icons}

	l := list.New([]list.Item{}, delegate, tokens.ModalWidth(0), tokens.Sizes.ModalHeight)
	l.Title = "Select calling code"
	l.Styles.Title = styles.ModalTitle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("country", "countries")

	// The modal decides when to close; the list must never quit the program.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	return l
}

// renderPickerModal draws the modal panel centered over the terminal
func (m SignUpModel) renderPickerModal() string {
	panel := m.styles.ModalPanel.
		Width(m.tokens.ModalWidth(m.Width)).
		Render(m.picker.View())

	help := m.styles.Help.Render(m.help.View(m.pickerKeys))
	content := lipgloss.JoinVertical(lipgloss.Center, panel, help)

	return lipgloss.Place(
		m.Width,
		m.Height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
