package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wallie/wallie/internal/countries"
)

// RenderCountryTable renders the directory as a bordered table. The row
// whose code equals markCode is highlighted and flagged with DefaultMarker.
func RenderCountryTable(list []countries.Country, markCode string, width int) string {
	marked := countries.IndexOf(list, markCode)

	rows := make([][]string, len(list))
	for i, c := range list {
		mark := ""
		if i == marked {
			mark = DefaultMarker
		}
		rows[i] = []string{mark, c.Code, c.CallingCode, c.Name}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(PrimaryColor)).
		Headers("", "CODE", "CALLING", "NAME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case row == marked:
				return TableMarkedStyle
			default:
				return TableCellStyle
			}
		})

	if width > 0 {
		t = t.Width(width)
	}

	return t.String()
}

// PrintCountries prints the directory table followed by a count line
func (p *Printer) PrintCountries(list []countries.Country, markCode string) {
	if len(list) == 0 {
		p.Println(HintStyle.Render("No countries."))
		return
	}
	p.Println(RenderCountryTable(list, markCode, p.width))
	p.Println(HintStyle.Render(fmt.Sprintf("%d countries", len(list))))
}
