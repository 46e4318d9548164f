package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labelled value in a header or result box. Fields render in
// the order given.
type Field struct {
	Key   string
	Value string
}

// Printer writes styled CLI output to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = clampWidth(width, nil)
	return p
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params []Field) {
	p.Println(RenderHeader(title, command, params, p.width))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Field) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintError prints an error result box with troubleshooting hints
func (p *Printer) PrintError(title, message string, hints []string) {
	p.Println(RenderErrorBox(title, message, hints, p.width))
}

// RenderHeader renders a command header box
func RenderHeader(title, command string, params []Field, width int) string {
	top := lipgloss.JoinVertical(
		lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(title)),
		HeaderCommandStyle.Render(command),
	)

	sections := []string{top}
	if len(params) > 0 {
		dividerWidth := width - 6
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Render(strings.Repeat("─", dividerWidth))
		sections = append(sections, divider, renderFields(params, ""))
	}

	return boxStyle(width, PrimaryColor).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// RenderSuccessBox renders a success result box
func RenderSuccessBox(title string, details []Field, width int) string {
	lines := []string{SuccessTitleStyle.Render(SuccessMarker + "  " + title)}
	if len(details) > 0 {
		lines = append(lines, "", renderFields(details, "   "))
	}
	return boxStyle(width, SuccessColor).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error result box with troubleshooting hints.
// An empty message omits the error line.
func RenderErrorBox(title, message string, hints []string, width int) string {
	lines := []string{ErrorTitleStyle.Render(FailureMarker + "  " + title)}

	if message != "" {
		lines = append(lines, "", ErrorMessageStyle.Render("Error: "+message))
	}

	if len(hints) > 0 {
		lines = append(lines, "", HintStyle.Bold(true).Render("Troubleshooting:"))
		for _, hint := range hints {
			lines = append(lines, HintStyle.Render("  • "+hint))
		}
	}

	return boxStyle(width, ErrorColor).Render(strings.Join(lines, "\n"))
}

func renderFields(fields []Field, indent string) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, indent+ParamKeyStyle.Render(f.Key+":")+" "+ParamValueStyle.Render(f.Value))
	}
	return strings.Join(lines, "\n")
}
