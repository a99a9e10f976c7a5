package settings

import (
	"github.com/google/uuid"

	"github.com/dshills/stormterm/internal/settings/keybind"
	"github.com/dshills/stormterm/internal/settings/scheme"
)

// Validate runs the repair/validation pipeline over the loaded profiles
// and globals. The passes run in a strict order; each pass assumes the
// earlier ones already ran. A returned error is fatal (NoProfiles or
// AllProfilesHidden) and means the settings must not be used; every
// other problem is repaired in place and recorded as a warning.
//
// After Validate returns nil: the store is non-empty, every profile has
// a unique GUID, no profile is hidden, the default profile GUID refers
// to a real profile, every scheme reference resolves, and every
// non-empty media path is a valid resource locator.
func (s *Settings) Validate() error {
	s.warnings = s.warnings[:0]

	// Nothing else is meaningful without profiles.
	if err := s.validateProfilesExist(); err != nil {
		return err
	}

	// Assign GUIDs before anything that keys off them: reordering,
	// dedup and default-profile resolution.
	s.validateProfilesHaveGUIDs()

	// Re-order to the user's declared order. Runs before hidden-profile
	// removal because the ordering source is the raw, unfiltered trees.
	s.reorderProfilesToMatchUserOrder()

	// Remove hidden profiles after re-ordering; the store may become
	// empty here, which is fatal.
	if err := s.removeHiddenProfiles(); err != nil {
		return err
	}

	s.validateNoDuplicateProfiles()

	// Resolve the default profile token before checking it exists.
	s.resolveDefaultProfile()
	s.validateDefaultProfileExists()

	s.validateAllSchemesExist()
	s.validateMediaResources()
	s.validateKeybindings()
	s.validateNoGlobalsKey()

	s.validated = true
	return nil
}

// validateProfilesExist fails when the store is empty. The settings
// object won't be returned to anyone, so this is an error rather than a
// warning.
func (s *Settings) validateProfilesExist() error {
	if s.profiles.Len() == 0 {
		return &LoadError{Code: NoProfiles}
	}
	return nil
}

// validateProfilesHaveGUIDs assigns the deterministic derived GUID to
// every profile that didn't declare one. Adds no warnings.
func (s *Settings) validateProfilesHaveGUIDs() {
	for _, p := range s.profiles.Profiles() {
		p.GenerateGUIDIfNeeded()
	}
}

// reorderProfilesToMatchUserOrder permutes the store to the sequence
// the user declared: profiles from the user settings first, in
// declaration order, then default profiles that weren't in the user
// settings, then everything else (generated profiles) in load order.
// Adds no warnings.
func (s *Settings) reorderProfilesToMatchUserOrder() {
	s.profiles.reorder(s.declaredProfileOrder())
}

// removeHiddenProfiles drops every profile marked hidden. If nothing
// survives the settings are unusable, which is fatal.
func (s *Settings) removeHiddenProfiles() error {
	s.profiles.removeWhere(func(p *Profile) bool { return p.Hidden })
	if s.profiles.Len() == 0 {
		return &LoadError{Code: AllProfilesHidden}
	}
	return nil
}

// validateNoDuplicateProfiles removes every profile whose GUID was
// already seen earlier in the store, keeping the first occurrence. One
// warning is emitted no matter how many duplicates were removed.
func (s *Settings) validateNoDuplicateProfiles() {
	seen := make(map[uuid.UUID]bool, s.profiles.Len())
	removed := s.profiles.removeWhere(func(p *Profile) bool {
		if seen[*p.GUID] {
			return true
		}
		seen[*p.GUID] = true
		return false
	})
	if removed {
		s.warnings = append(s.warnings, WarnDuplicateProfile)
	}
}

// resolveDefaultProfile resolves the raw "defaultProfile" token, which
// may be a GUID string or a profile name, into a GUID. The token is
// consumed either way; an unresolvable token leaves the default unset
// for the existence check to repair.
func (s *Settings) resolveDefaultProfile() {
	token := s.globals.UnparsedDefaultProfile()
	if token == "" {
		return
	}
	s.globals.unparsedDefaultProfile = ""
	if res := s.lookupProfile(token); res.match != matchNone {
		s.globals.SetDefaultProfile(res.guid)
	}
}

// validateDefaultProfileExists repairs an unset or dangling default
// profile reference by pointing it at the first profile. The repair is
// runtime-only; it is never written back to the user's settings. The
// resolved flag, not the zero GUID, decides "unset": the zero GUID is a
// profile identifier like any other.
func (s *Settings) validateDefaultProfileExists() {
	if s.globals.HasDefaultProfile() && s.profiles.FindProfile(s.globals.DefaultProfile()) != nil {
		return
	}
	s.warnings = append(s.warnings, WarnMissingDefaultProfile)
	s.globals.SetDefaultProfile(*s.profiles.At(0).GUID)
}

// validateAllSchemesExist resets any profile whose scheme name doesn't
// match a parsed scheme to the fallback scheme. One warning no matter
// how many profiles were affected.
func (s *Settings) validateAllSchemesExist() {
	schemes := s.globals.ColorSchemes()
	found := false
	for _, p := range s.profiles.Profiles() {
		if p.ColorSchemeName == "" {
			continue
		}
		if _, ok := schemes[p.ColorSchemeName]; !ok {
			p.ColorSchemeName = scheme.FallbackName
			found = true
		}
	}
	if found {
		s.warnings = append(s.warnings, WarnUnknownColorScheme)
	}
}

// validateMediaResources checks that every non-empty icon and
// background image path is a valid resource locator once expanded. A
// path that isn't is cleared, isolating the damage to that one field.
// At most one warning per resource kind.
func (s *Settings) validateMediaResources() {
	invalidBackground := false
	invalidIcon := false

	for _, p := range s.profiles.Profiles() {
		if p.BackgroundImagePath != "" {
			if _, err := p.ExpandedBackgroundImagePath(); err != nil {
				p.BackgroundImagePath = ""
				invalidBackground = true
			}
		}
		if p.Icon != "" {
			if _, err := p.ExpandedIcon(); err != nil {
				p.Icon = ""
				invalidIcon = true
			}
		}
	}

	if invalidBackground {
		s.warnings = append(s.warnings, WarnInvalidBackgroundImage)
	}
	if invalidIcon {
		s.warnings = append(s.warnings, WarnInvalidIcon)
	}
}

// validateKeybindings surfaces the issues collected while parsing the
// keybinding table, preceded by a header warning.
func (s *Settings) validateKeybindings() {
	issues := s.globals.KeybindingIssues()
	if len(issues) == 0 {
		return
	}
	s.warnings = append(s.warnings, WarnAtLeastOneKeybinding)
	for _, issue := range issues {
		switch issue.Code {
		case keybind.IssueTooManyKeys:
			s.warnings = append(s.warnings, WarnTooManyKeysForChord)
		case keybind.IssueUnknownKey:
			s.warnings = append(s.warnings, WarnUnrecognizedKey)
		case keybind.IssueMissingAction, keybind.IssueMissingRequiredArg:
			s.warnings = append(s.warnings, WarnMissingRequiredParameter)
		}
	}
}

// validateNoGlobalsKey warns when the user settings still carry the
// obsolete top-level "globals" key. Detection only, no repair.
func (s *Settings) validateNoGlobalsKey() {
	if s.userSettings.Get("globals").Exists() {
		s.warnings = append(s.warnings, WarnLegacyGlobalsProperty)
	}
}
