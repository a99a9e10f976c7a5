package settings

import (
	"github.com/google/uuid"

	"github.com/dshills/stormterm/internal/settings/keybind"
	"github.com/dshills/stormterm/internal/settings/scheme"
)

// GlobalSettings holds the cross-cutting settings that aren't tied to a
// single profile: the default profile reference, the color scheme table
// and the keybinding table. It is mutated by the validation pipeline
// (default-profile repair) and read-only afterward.
type GlobalSettings struct {
	// unparsedDefaultProfile is the raw "defaultProfile" token from the
	// settings tree. It may be a braced GUID string or a profile name;
	// validation resolves it into defaultProfile.
	unparsedDefaultProfile string

	// defaultProfile is the resolved default profile GUID. The all-zero
	// GUID is a legal profile identifier, so defaultProfileSet tracks
	// whether resolution happened rather than comparing against zero.
	defaultProfile    uuid.UUID
	defaultProfileSet bool

	// colorSchemes maps scheme names to parsed schemes.
	colorSchemes map[string]*scheme.ColorScheme

	// keybindings is the parsed keybinding table.
	keybindings keybind.Map

	// keybindingIssues are the problems collected while parsing
	// keybindings; validation surfaces them as warnings.
	keybindingIssues []keybind.Issue

	// Session defaults layered over every profile.
	initialRows    int
	initialCols    int
	copyOnSelect   bool
	wordDelimiters string
}

// NewGlobalSettings returns globals with the built-in session defaults.
// The fallback scheme is always present in the scheme table, so scheme
// repair during validation leaves every profile pointing at a real
// scheme.
func NewGlobalSettings() *GlobalSettings {
	return &GlobalSettings{
		colorSchemes:   map[string]*scheme.ColorScheme{scheme.FallbackName: scheme.Fallback()},
		keybindings:    make(keybind.Map),
		initialRows:    30,
		initialCols:    120,
		wordDelimiters: " /\\()\"'-.,:;<>~!@#$%^&*|+=[]{}?",
	}
}

// DefaultProfile returns the resolved default profile GUID, which is
// zero before resolution.
func (g *GlobalSettings) DefaultProfile() uuid.UUID {
	return g.defaultProfile
}

// HasDefaultProfile reports whether a default profile GUID has been
// resolved.
func (g *GlobalSettings) HasDefaultProfile() bool {
	return g.defaultProfileSet
}

// SetDefaultProfile stores the resolved default profile GUID.
func (g *GlobalSettings) SetDefaultProfile(guid uuid.UUID) {
	g.defaultProfile = guid
	g.defaultProfileSet = true
}

// UnparsedDefaultProfile returns the raw default-profile token from the
// settings tree, or "" if none was declared.
func (g *GlobalSettings) UnparsedDefaultProfile() string {
	return g.unparsedDefaultProfile
}

// ColorSchemes returns the scheme table keyed by name.
func (g *GlobalSettings) ColorSchemes() map[string]*scheme.ColorScheme {
	return g.colorSchemes
}

// AddColorScheme inserts or replaces a scheme by name.
func (g *GlobalSettings) AddColorScheme(s *scheme.ColorScheme) {
	g.colorSchemes[s.Name] = s
}

// Keybindings returns the parsed keybinding table.
func (g *GlobalSettings) Keybindings() keybind.Map {
	return g.keybindings
}

// KeybindingIssues returns the problems collected while parsing the
// keybinding table.
func (g *GlobalSettings) KeybindingIssues() []keybind.Issue {
	return g.keybindingIssues
}

// ApplyToSettings layers the global session fields onto an effective
// settings object.
func (g *GlobalSettings) ApplyToSettings(ts *TerminalSettings) {
	ts.InitialRows = g.initialRows
	ts.InitialCols = g.initialCols
	ts.CopyOnSelect = g.copyOnSelect
	ts.WordDelimiters = g.wordDelimiters
	ts.Keybindings = g.keybindings
}
