package settings

// Warning is a non-fatal problem found while validating settings. The
// pipeline repairs the underlying condition in place and accumulates the
// warning; the UI layer decides whether and how to present them.
type Warning uint8

const (
	// WarnMissingDefaultProfile indicates the default profile was unset or
	// referenced a profile that doesn't exist; the first profile was used.
	WarnMissingDefaultProfile Warning = iota

	// WarnDuplicateProfile indicates profiles sharing a GUID were removed.
	WarnDuplicateProfile

	// WarnUnknownColorScheme indicates a profile referenced a scheme that
	// doesn't exist; the fallback scheme was substituted.
	WarnUnknownColorScheme

	// WarnInvalidBackgroundImage indicates a background image path that
	// isn't a valid resource locator; the path was cleared.
	WarnInvalidBackgroundImage

	// WarnInvalidIcon indicates an icon path that isn't a valid resource
	// locator; the path was cleared.
	WarnInvalidIcon

	// WarnAtLeastOneKeybinding is the header warning preceding the
	// individual keybinding warnings.
	WarnAtLeastOneKeybinding

	// WarnTooManyKeysForChord indicates a keybinding chord with more than
	// one non-modifier key.
	WarnTooManyKeysForChord

	// WarnUnrecognizedKey indicates a keybinding chord referencing a key
	// name that isn't recognized.
	WarnUnrecognizedKey

	// WarnMissingRequiredParameter indicates a keybinding whose action was
	// missing or lacked a required argument.
	WarnMissingRequiredParameter

	// WarnLegacyGlobalsProperty indicates the user settings still carry
	// the obsolete top-level "globals" key.
	WarnLegacyGlobalsProperty
)

// String returns a stable name for the warning.
func (w Warning) String() string {
	switch w {
	case WarnMissingDefaultProfile:
		return "missing_default_profile"
	case WarnDuplicateProfile:
		return "duplicate_profile"
	case WarnUnknownColorScheme:
		return "unknown_color_scheme"
	case WarnInvalidBackgroundImage:
		return "invalid_background_image"
	case WarnInvalidIcon:
		return "invalid_icon"
	case WarnAtLeastOneKeybinding:
		return "at_least_one_keybinding_warning"
	case WarnTooManyKeysForChord:
		return "too_many_keys_for_chord"
	case WarnUnrecognizedKey:
		return "unrecognized_key"
	case WarnMissingRequiredParameter:
		return "missing_required_parameter"
	case WarnLegacyGlobalsProperty:
		return "legacy_globals_property"
	default:
		return "unknown"
	}
}

// Message returns a human-readable description suitable for display.
func (w Warning) Message() string {
	switch w {
	case WarnMissingDefaultProfile:
		return "the default profile could not be found; using the first profile instead"
	case WarnDuplicateProfile:
		return "profiles with duplicate GUIDs were found; later copies were ignored"
	case WarnUnknownColorScheme:
		return "a profile referenced a color scheme that doesn't exist; using the fallback scheme"
	case WarnInvalidBackgroundImage:
		return "a background image path could not be interpreted and was ignored"
	case WarnInvalidIcon:
		return "an icon path could not be interpreted and was ignored"
	case WarnAtLeastOneKeybinding:
		return "some keybindings could not be loaded:"
	case WarnTooManyKeysForChord:
		return "a keybinding chord has more than one non-modifier key"
	case WarnUnrecognizedKey:
		return "a keybinding chord references a key that isn't recognized"
	case WarnMissingRequiredParameter:
		return "a keybinding is missing its action or a required argument"
	case WarnLegacyGlobalsProperty:
		return "the top-level \"globals\" key is obsolete and is ignored"
	default:
		return "unknown warning"
	}
}
