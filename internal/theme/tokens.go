// Package theme holds the design tokens of the sign-up screen and the named
// lipgloss style records composed from them.
//
// Tokens are plain values: screens receive a Tokens (usually Default()) and
// build their Styles from it, so nothing here is mutable global state.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors is the palette.
type Colors struct {
	Lime       lipgloss.Color
	Emerald    lipgloss.Color
	LightGreen lipgloss.Color
	White      lipgloss.Color
	Black      lipgloss.Color
	Gray       lipgloss.Color
}

// Sizes is the spacing scale, in terminal cells.
type Sizes struct {
	Padding     int // Base unit; layouts use multiples of it
	InputWidth  int
	CodeWidth   int // Calling code button
	ButtonWidth int
	ModalHeight int // Rows of the picker panel
	ModalWidth  float64
}

// Font is the terminal rendition of a typography token.
type Font struct {
	Bold      bool
	Italic    bool
	Uppercase bool
}

// Fonts is the typography scale.
type Fonts struct {
	H3    Font
	H4    Font
	Body3 Font
	Body4 Font
}

// Icons are the glyphs standing in for the mobile image assets.
type Icons struct {
	Back    string
	Down    string
	Eye     string
	EyeOff  string
	Logo    string
	Pointer string
}

// Tokens bundles every design token the screen consumes.
type Tokens struct {
	Colors Colors
	Sizes  Sizes
	Fonts  Fonts
	Icons  Icons
}

// Default returns the Wallie tokens.
func Default() Tokens {
	return Tokens{
		Colors: Colors{
			Lime:       lipgloss.Color("#00BA63"),
			Emerald:    lipgloss.Color("#2BC978"),
			LightGreen: lipgloss.Color("#BBBDC1"),
			White:      lipgloss.Color("#FFFFFF"),
			Black:      lipgloss.Color("#1E1F20"),
			Gray:       lipgloss.Color("#6A6A6A"),
		},
		Sizes: Sizes{
			Padding:     1,
			InputWidth:  36,
			CodeWidth:   12,
			ButtonWidth: 40,
			ModalHeight: 20,
			ModalWidth:  0.8,
		},
		Fonts: Fonts{
			H3:    Font{Bold: true, Uppercase: true},
			H4:    Font{Bold: true},
			Body3: Font{},
			Body4: Font{Italic: true},
		},
		Icons: Icons{
			Back:    "←",
			Down:    "▾",
			Eye:     "◉",
			EyeOff:  "◎",
			Pointer: "›",
			Logo: strings.Join([]string{
				"█   █  ▄▀▄  █    █    █ █▀▀",
				"█ █ █ █▀▀▀█ █    █    █ █▀▀",
				" ▀ ▀  ▀   ▀ ▀▀▀▀ ▀▀▀▀ ▀ ▀▀▀",
			}, "\n"),
		},
	}
}

