package settings

import (
	_ "embed"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/dshills/stormterm/internal/settings/keybind"
	"github.com/dshills/stormterm/internal/settings/scheme"
)

//go:embed defaults.json
var defaultSettingsJSON []byte

// DefaultSettings returns the built-in default settings document.
func DefaultSettings() []byte {
	return defaultSettingsJSON
}

// ProfileGenerator synthesizes profiles that aren't declared in any
// settings file, such as detected login shells. Generators run during
// load, before validation.
type ProfileGenerator interface {
	// Namespace is the source tag stamped onto generated profiles.
	Namespace() string

	// Generate returns the generator's profiles in a stable order. An
	// error disables the generator for this load; it never aborts the
	// load itself.
	Generate() ([]*Profile, error)
}

// Settings owns the profile store and global settings for one load of
// the configuration. Build one with New, feed it configuration with
// LoadFromJSON, then run Validate exactly once before resolving
// sessions. A Settings is not safe for concurrent mutation; reloads
// build a fresh instance and swap it in (see Service).
type Settings struct {
	profiles ProfileStore
	globals  *GlobalSettings
	warnings []Warning

	generators []ProfileGenerator

	// Raw parsed trees, kept for the reorder and legacy-key passes.
	userSettings    gjson.Result
	defaultSettings gjson.Result

	validated bool
}

// Option configures a Settings instance.
type Option func(*Settings)

// WithGenerators sets the dynamic profile generators to run at load.
func WithGenerators(gens ...ProfileGenerator) Option {
	return func(s *Settings) {
		s.generators = append(s.generators, gens...)
	}
}

// New creates an empty Settings instance.
func New(opts ...Option) *Settings {
	s := &Settings{
		globals: NewGlobalSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profiles returns the profiles in order. Before validation this is the
// raw loaded set; afterward it satisfies the post-validation
// invariants.
func (s *Settings) Profiles() []*Profile {
	return s.profiles.Profiles()
}

// FindProfile returns the profile with the given GUID, or nil.
func (s *Settings) FindProfile(guid uuid.UUID) *Profile {
	return s.profiles.FindProfile(guid)
}

// Globals returns the global settings.
func (s *Settings) Globals() *GlobalSettings {
	return s.globals
}

// Keybindings returns the globally configured keybindings.
func (s *Settings) Keybindings() keybind.Map {
	return s.globals.Keybindings()
}

// Warnings returns the warnings accumulated by the last Validate call,
// in the order they were found.
func (s *Settings) Warnings() []Warning {
	return s.warnings
}

// GetColorSchemeForProfile returns the scheme for the given profile, or
// nil when the profile doesn't exist or its scheme name is unknown.
func (s *Settings) GetColorSchemeForProfile(guid uuid.UUID) *scheme.ColorScheme {
	p := s.profiles.FindProfile(guid)
	if p == nil || p.ColorSchemeName == "" {
		return nil
	}
	return s.globals.ColorSchemes()[p.ColorSchemeName]
}

// ApplyColorScheme applies the named scheme to the settings in place.
// Reports whether a scheme with that name exists; when it doesn't, the
// settings are left unchanged.
func (s *Settings) ApplyColorScheme(ts *TerminalSettings, name string) bool {
	sch, ok := s.globals.ColorSchemes()[name]
	if !ok {
		return false
	}
	ts.applyScheme(sch)
	return true
}
