package settings

import (
	_ "embed"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/sjson"
)

// Markers replaced in the first-run settings template.
const (
	markerDefaultProfile = "%DEFAULT_PROFILE%"
	markerProduct        = "%PRODUCT%"
	markerVersion        = "%VERSION%"
	markerLoginShellName = "%LOGIN_SHELL_LOCALIZED_NAME%"
)

// loginShellNameKey is the localization key for the login shell
// profile's display name.
const loginShellNameKey = "LoginShellDisplayName"

//go:embed settings_template.json
var settingsTemplateJSON string

// SettingsTemplate returns the raw first-run settings template, with
// its substitution markers intact.
func SettingsTemplate() string {
	return settingsTemplateJSON
}

// TemplateInfo carries the values substituted into the settings
// template.
type TemplateInfo struct {
	// ProductName replaces %PRODUCT%.
	ProductName string

	// Version replaces %VERSION%.
	Version string

	// PreferredShellProfile is the profile name to prefer as the
	// template's default profile, typically the detected login shell.
	// When it doesn't resolve, the currently resolved default is used.
	PreferredShellProfile string

	// Localize resolves a localization key to a display string.
	// Localization is an external service; nil falls back to the key.
	Localize func(key string) string
}

// ApplyFirstRunChanges substitutes the known markers in a settings
// template: the default profile GUID, product name, version and the
// localized login shell name. When the template has no default-profile
// marker the resolved GUID is stamped into the document instead, so the
// generated settings always carry a concrete default.
func (s *Settings) ApplyFirstRunChanges(template string, info TemplateInfo) string {
	defaultGUID := "{" + s.globals.DefaultProfile().String() + "}"
	if info.PreferredShellProfile != "" {
		if res := s.lookupProfile(info.PreferredShellProfile); res.match != matchNone {
			defaultGUID = "{" + res.guid.String() + "}"
		}
	}

	out := template
	hadMarker := strings.Contains(out, markerDefaultProfile)
	out = strings.ReplaceAll(out, markerDefaultProfile, defaultGUID)
	out = strings.ReplaceAll(out, markerProduct, info.ProductName)
	out = strings.ReplaceAll(out, markerVersion, info.Version)

	shellName := loginShellNameKey
	if info.Localize != nil {
		shellName = info.Localize(loginShellNameKey)
	}
	out = strings.ReplaceAll(out, markerLoginShellName, shellName)

	if !hadMarker {
		if stamped, err := sjson.Set(string(jsonc.ToJSON([]byte(out))), "defaultProfile", defaultGUID); err == nil {
			out = stamped
		}
	}

	return out
}

// StampGeneratedProfiles appends a stub entry to the user settings
// document for every generated profile that isn't declared there yet,
// so users can customize or hide generated profiles by editing their
// own file. Comments in the input are normalized away. The store must
// already be loaded; the result is the updated document.
func (s *Settings) StampGeneratedProfiles(userJSON []byte) ([]byte, error) {
	doc := jsonc.ToJSON(userJSON)
	if !gjson.ParseBytes(doc).IsObject() {
		doc = []byte("{}")
	}

	declared := make(map[string]bool)
	gjson.GetBytes(doc, "profiles").ForEach(func(_, raw gjson.Result) bool {
		if g, ok := parseGUID(raw.Get("guid").String()); ok {
			declared["{"+g.String()+"}"] = true
		}
		return true
	})

	for _, p := range s.profiles.Profiles() {
		if p.Source == SourceUser || p.Source == SourceDefaults {
			continue
		}
		if p.GUID == nil || declared[p.GUIDString()] {
			continue
		}

		stub, err := sjson.Set(`{}`, "guid", p.GUIDString())
		if err != nil {
			return nil, err
		}
		stub, _ = sjson.Set(stub, "name", p.Name)
		stub, _ = sjson.Set(stub, "source", string(p.Source))
		stub, _ = sjson.Set(stub, "hidden", false)

		doc, err = sjson.SetRawBytes(doc, "profiles.-1", []byte(stub))
		if err != nil {
			return nil, err
		}
		declared[p.GUIDString()] = true
	}

	return doc, nil
}
