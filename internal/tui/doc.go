// Package tui implements the Wallie sign-up screen as a terminal user interface.
//
// Built on Bubble Tea, it follows the Elm architecture: models hold all state,
// Update returns the next model plus commands, and View is a pure function of
// the model.
//
// # Architecture
//
// AppModel owns the current screen and the global Ctrl+C quit:
//   - SignUp: header, logo, name/phone/password form, calling code picker
//   - Home: the destination reached from Continue
//
// Screens render through RenderApplicationContainer for a consistent header
// and help footer. The calling code picker replaces the container with a
// centered modal while it is open.
//
// # Country Directory
//
// A sign-up screen loads the directory exactly once, from Init's command.
// The load runs under a context owned by the screen and its completion is
// tagged with the screen's session ID. Closing the screen cancels the
// context; completions for a closed screen, or for another session, are
// dropped. A failed load leaves the picker empty and nothing selected, with
// no message shown.
//
// # Key Bindings
//
//   - Form: tab/↓ next, shift+tab/↑ previous, enter press, ctrl+c quit
//   - Picker: ↑/↓ move, enter select, / filter, esc close
//   - Home: q quit
//
// # Usage Example
//
//	client := countries.NewClient(urls.CountriesAll, urls.FlagService)
//	app := tui.NewAppModel(tui.SignUpOptions{
//	    Source:      client,
//	    Destination: "Home",
//	    Tokens:      theme.Default(),
//	})
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
package tui
