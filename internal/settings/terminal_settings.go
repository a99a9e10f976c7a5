package settings

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/stormterm/internal/settings/keybind"
	"github.com/dshills/stormterm/internal/settings/scheme"
)

// TerminalSettings is the effective configuration for one terminal
// session: the chosen profile's fields, the resolved color scheme's
// colors and the global session fields, flattened into a single object
// the session launcher consumes.
type TerminalSettings struct {
	// Profile fields.
	Commandline         string
	StartingDirectory   string
	StartingTitle       string
	Icon                string
	BackgroundImagePath string

	// Scheme colors.
	Foreground          colorful.Color
	Background          colorful.Color
	CursorColor         colorful.Color
	SelectionBackground colorful.Color
	ColorTable          [scheme.TableSize]colorful.Color

	// Global session fields.
	InitialRows    int
	InitialCols    int
	CopyOnSelect   bool
	WordDelimiters string
	Keybindings    keybind.Map
}

// CreateTerminalSettings builds the profile's base effective settings,
// applying the profile's scheme from the given table. An empty or
// unknown scheme name uses the fallback colors; after validation the
// unknown case can't occur.
func (p *Profile) CreateTerminalSettings(schemes map[string]*scheme.ColorScheme) *TerminalSettings {
	ts := &TerminalSettings{
		Commandline:         p.Commandline,
		StartingDirectory:   p.StartingDirectory,
		StartingTitle:       p.TabTitle,
		Icon:                p.Icon,
		BackgroundImagePath: p.BackgroundImagePath,
	}
	if ts.StartingTitle == "" {
		ts.StartingTitle = p.Name
	}

	sch := scheme.Fallback()
	if p.ColorSchemeName != "" {
		if named, ok := schemes[p.ColorSchemeName]; ok {
			sch = named
		}
	}
	ts.applyScheme(sch)

	return ts
}

// applyScheme copies a scheme's colors into the settings.
func (ts *TerminalSettings) applyScheme(s *scheme.ColorScheme) {
	ts.Foreground = s.Foreground
	ts.Background = s.Background
	ts.CursorColor = s.CursorColor
	ts.SelectionBackground = s.SelectionBackground
	ts.ColorTable = s.Table
}
