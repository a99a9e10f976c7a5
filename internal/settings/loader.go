package settings

import (
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"

	"github.com/dshills/stormterm/internal/settings/keybind"
	"github.com/dshills/stormterm/internal/settings/scheme"
)

// LoadFromJSON populates the profile store and globals from the user
// and default settings documents. Both may carry comments and trailing
// commas (JSONC). Profile order at this point is user, defaults, then
// generated; the validation pipeline establishes the final order.
//
// Loading is tolerant: malformed profiles, schemes and keybindings are
// skipped (keybindings additionally record issues for the validation
// pipeline to surface). Only Validate decides whether the result is
// usable.
func (s *Settings) LoadFromJSON(userJSON, defaultJSON []byte) error {
	s.userSettings = gjson.ParseBytes(jsonc.ToJSON(userJSON))
	s.defaultSettings = gjson.ParseBytes(jsonc.ToJSON(defaultJSON))

	// Globals: defaults first, then the user tree over it.
	s.loadGlobals(s.defaultSettings)
	s.loadGlobals(s.userSettings)

	// Profiles: user declarations first, then defaults, then generated.
	s.loadProfiles(s.userSettings, SourceUser)
	s.loadProfiles(s.defaultSettings, SourceDefaults)
	s.runGenerators()

	s.validated = false
	return nil
}

// loadGlobals reads the top-level global keys from one settings tree
// into the globals, overriding anything a lower layer set.
func (s *Settings) loadGlobals(tree gjson.Result) {
	g := s.globals

	if v := tree.Get("defaultProfile"); v.Exists() {
		g.unparsedDefaultProfile = v.String()
	}
	if v := tree.Get("initialRows"); v.Exists() {
		g.initialRows = int(v.Int())
	}
	if v := tree.Get("initialCols"); v.Exists() {
		g.initialCols = int(v.Int())
	}
	if v := tree.Get("copyOnSelect"); v.Exists() {
		g.copyOnSelect = v.Bool()
	}
	if v := tree.Get("wordDelimiters"); v.Exists() {
		g.wordDelimiters = v.String()
	}

	tree.Get("schemes").ForEach(func(_, raw gjson.Result) bool {
		if sch, err := scheme.Parse(raw); err == nil {
			g.AddColorScheme(sch)
		}
		return true
	})

	if v := tree.Get("keybindings"); v.Exists() {
		bindings, issues := keybind.ParseMap(v)
		for chord, binding := range bindings {
			g.keybindings[chord] = binding
		}
		g.keybindingIssues = append(g.keybindingIssues, issues...)
	}
}

// loadProfiles appends every profile object in the tree's profiles
// array to the store.
func (s *Settings) loadProfiles(tree gjson.Result, source Source) {
	tree.Get("profiles").ForEach(func(_, raw gjson.Result) bool {
		if raw.IsObject() {
			s.profiles.Append(parseProfile(raw, source))
		}
		return true
	})
}

// parseProfile reads one profile object. A profile may carry an
// explicit "source" (generated profiles stamped into user settings do);
// otherwise it takes the tree's source. An unparsable GUID is treated
// as absent and assigned during validation.
func parseProfile(v gjson.Result, source Source) *Profile {
	p := &Profile{
		Name:                v.Get("name").String(),
		Source:              source,
		Hidden:              v.Get("hidden").Bool(),
		ColorSchemeName:     v.Get("colorScheme").String(),
		Icon:                v.Get("icon").String(),
		BackgroundImagePath: v.Get("backgroundImage").String(),
		Commandline:         v.Get("commandline").String(),
		StartingDirectory:   v.Get("startingDirectory").String(),
		TabTitle:            v.Get("tabTitle").String(),
	}
	if src := v.Get("source").String(); src != "" {
		p.Source = Source(src)
	}
	if g, ok := parseGUID(v.Get("guid").String()); ok {
		p.GUID = &g
	}
	return p
}

// parseGUID parses a braced or bare GUID string.
func parseGUID(raw string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.UUID{}, false
	}
	g, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, false
	}
	return g, true
}

// runGenerators appends the dynamic profiles. A failing generator is
// isolated: it contributes nothing and never aborts the load.
func (s *Settings) runGenerators() {
	for _, gen := range s.generators {
		profiles, err := gen.Generate()
		if err != nil {
			continue
		}
		for _, p := range profiles {
			if p.Source == "" {
				p.Source = Source(gen.Namespace())
			}
			s.profiles.Append(p)
		}
	}
}

// declaredProfileOrder collects the profile GUIDs as they appear in the
// user settings and then the default settings, skipping repeats. For
// declarations without a usable GUID the deterministic derived GUID is
// used, matching what GUID assignment gives the corresponding store
// entry.
func (s *Settings) declaredProfileOrder() []uuid.UUID {
	var order []uuid.UUID
	seen := make(map[uuid.UUID]bool)

	collect := func(tree gjson.Result, source Source) {
		tree.Get("profiles").ForEach(func(_, raw gjson.Result) bool {
			if !raw.IsObject() {
				return true
			}
			g, ok := parseGUID(raw.Get("guid").String())
			if !ok {
				src := source
				if explicit := raw.Get("source").String(); explicit != "" {
					src = Source(explicit)
				}
				g = DeriveGUID(src, raw.Get("name").String())
			}
			if !seen[g] {
				seen[g] = true
				order = append(order, g)
			}
			return true
		})
	}

	collect(s.userSettings, SourceUser)
	collect(s.defaultSettings, SourceDefaults)
	return order
}
