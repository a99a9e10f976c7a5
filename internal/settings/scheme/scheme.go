// Package scheme provides terminal color schemes.
//
// A ColorScheme holds the named colors a profile can reference from
// settings.json. Schemes are parsed once at load time and treated as
// immutable afterward; profiles refer to them by name only.
package scheme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"
)

// TableSize is the number of indexed entries in a scheme's color table.
const TableSize = 16

// FallbackName is the scheme substituted when a profile references a
// scheme that doesn't exist.
const FallbackName = "Campbell"

// ColorScheme is a named set of terminal colors.
type ColorScheme struct {
	// Name is the identifier profiles reference.
	Name string

	// Foreground is the default text color.
	Foreground colorful.Color

	// Background is the terminal background color.
	Background colorful.Color

	// CursorColor is the cursor color.
	CursorColor colorful.Color

	// SelectionBackground is the selection highlight color.
	SelectionBackground colorful.Color

	// Table holds the 16 ANSI palette colors, normal then bright.
	Table [TableSize]colorful.Color
}

// tableKeys lists the settings.json keys for the palette slots, in
// table order.
var tableKeys = [TableSize]string{
	"black", "red", "green", "yellow",
	"blue", "purple", "cyan", "white",
	"brightBlack", "brightRed", "brightGreen", "brightYellow",
	"brightBlue", "brightPurple", "brightCyan", "brightWhite",
}

// Parse builds a ColorScheme from a parsed settings tree node.
// Missing colors fall back to the corresponding fallback scheme color.
// An unparsable color or a missing name is an error; the caller decides
// whether to skip the scheme or abort.
func Parse(v gjson.Result) (*ColorScheme, error) {
	name := v.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("color scheme missing a name")
	}

	s := Fallback()
	s.Name = name

	fields := []struct {
		key string
		dst *colorful.Color
	}{
		{"foreground", &s.Foreground},
		{"background", &s.Background},
		{"cursorColor", &s.CursorColor},
		{"selectionBackground", &s.SelectionBackground},
	}
	for _, f := range fields {
		if raw := v.Get(f.key); raw.Exists() {
			c, err := ParseColor(raw.String())
			if err != nil {
				return nil, fmt.Errorf("scheme %q: %s: %w", name, f.key, err)
			}
			*f.dst = c
		}
	}

	for i, key := range tableKeys {
		if raw := v.Get(key); raw.Exists() {
			c, err := ParseColor(raw.String())
			if err != nil {
				return nil, fmt.Errorf("scheme %q: %s: %w", name, key, err)
			}
			s.Table[i] = c
		}
	}

	return s, nil
}

// ParseColor interprets a color value from settings.json. Accepts
// "#RGB"/"#RRGGBB" hex forms and the W3C color names tcell knows about
// ("darkcyan", "rebeccapurple", ...).
func ParseColor(raw string) (colorful.Color, error) {
	if strings.HasPrefix(raw, "#") {
		hex := raw
		// colorful only takes the long form; widen #RGB to #RRGGBB.
		if len(hex) == 4 {
			hex = fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q", raw)
		}
		return c, nil
	}

	if tc, ok := tcell.ColorNames[strings.ToLower(raw)]; ok {
		r, g, b := tc.RGB()
		return colorful.Color{
			R: float64(r) / 255.0,
			G: float64(g) / 255.0,
			B: float64(b) / 255.0,
		}, nil
	}

	return colorful.Color{}, fmt.Errorf("unknown color %q", raw)
}

// mustHex is for the built-in scheme tables, which are known-good.
func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Fallback returns a fresh copy of the hardcoded fallback scheme. It is
// substituted for unknown scheme references during validation and used
// as the base for partially specified schemes.
func Fallback() *ColorScheme {
	return &ColorScheme{
		Name:                FallbackName,
		Foreground:          mustHex("#CCCCCC"),
		Background:          mustHex("#0C0C0C"),
		CursorColor:         mustHex("#FFFFFF"),
		SelectionBackground: mustHex("#FFFFFF"),
		Table: [TableSize]colorful.Color{
			mustHex("#0C0C0C"), mustHex("#C50F1F"), mustHex("#13A10E"), mustHex("#C19C00"),
			mustHex("#0037DA"), mustHex("#881798"), mustHex("#3A96DD"), mustHex("#CCCCCC"),
			mustHex("#767676"), mustHex("#E74856"), mustHex("#16C60C"), mustHex("#F9F1A5"),
			mustHex("#3B78FF"), mustHex("#B4009E"), mustHex("#61D6D6"), mustHex("#F2F2F2"),
		},
	}
}
