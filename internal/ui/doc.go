// Package ui renders the styled output of the wallie CLI commands.
//
// Unlike the interactive sign-up screen, these components follow a "print
// and exit" pattern: commands build a header, a country table or a result
// box with Lipgloss and write it through a Printer.
//
// # Components
//
//   - Header: command banner with title, command path and parameters
//   - Country table: the directory, with the default country highlighted
//   - Result: success and error boxes, errors with troubleshooting hints
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Country Directory", "wallie countries", []ui.Field{
//	    {Key: "Endpoint", Value: cfg.Countries.Endpoint},
//	})
//	p.PrintCountries(list, cfg.Countries.DefaultCode)
//
// # Terminal Width
//
// The Printer measures stdout once with golang.org/x/term and clamps the
// result between MinTerminalWidth and MaxContentWidth. Non-terminals get
// MinTerminalWidth.
//
// # Logging Integration
//
// Zap logging is silent unless WALLIE_LOG_LEVEL or --log-level enables it,
// so the curated output is displayed cleanly.
package ui
