package settings

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// profileNamespace is the UUID v5 namespace used to derive GUIDs for
// profiles that don't declare one. Deriving instead of generating
// randomly keeps GUIDs stable across reloads of identical settings.
var profileNamespace = uuid.MustParse("2bde4a90-d05f-401c-9492-e40884ead1d8")

// Source identifies where a profile definition came from. Profiles from
// generators carry the generator's namespace as their source.
type Source string

const (
	// SourceUser marks profiles declared in the user's settings.json.
	SourceUser Source = "user"

	// SourceDefaults marks profiles from the built-in default settings.
	SourceDefaults Source = "defaults"
)

// Profile is a single terminal profile. Instances are mutated in place
// by the validation pipeline (GUID assignment, scheme and path repair)
// and must not be shared outside the owning Settings until validation
// completes.
type Profile struct {
	// GUID uniquely identifies the profile. Nil until declared or
	// assigned during validation.
	GUID *uuid.UUID

	// Name is the display name.
	Name string

	// Source records where the profile came from.
	Source Source

	// Hidden profiles are removed during validation.
	Hidden bool

	// ColorSchemeName references a scheme by name; empty means the
	// fallback colors.
	ColorSchemeName string

	// Icon is the profile's icon path or URI.
	Icon string

	// BackgroundImagePath is the background image path or URI.
	BackgroundImagePath string

	// Commandline is the command to run for new sessions.
	Commandline string

	// StartingDirectory is the initial working directory.
	StartingDirectory string

	// TabTitle is the initial tab title.
	TabTitle string
}

// DeriveGUID returns the deterministic GUID for a profile definition
// that doesn't declare one. Identical (source, name) pairs always yield
// the same GUID.
func DeriveGUID(source Source, name string) uuid.UUID {
	return uuid.NewSHA1(profileNamespace, []byte(string(source)+"\x00"+name))
}

// GenerateGUIDIfNeeded assigns the profile's derived GUID when none was
// declared. Reports whether a GUID was assigned.
func (p *Profile) GenerateGUIDIfNeeded() bool {
	if p.GUID != nil {
		return false
	}
	g := DeriveGUID(p.Source, p.Name)
	p.GUID = &g
	return true
}

// HasGUID reports whether the profile has a GUID set.
func (p *Profile) HasGUID() bool {
	return p.GUID != nil
}

// GUIDString returns the profile's GUID in the braced settings.json
// form, or "" when no GUID is set.
func (p *Profile) GUIDString() string {
	if p.GUID == nil {
		return ""
	}
	return "{" + p.GUID.String() + "}"
}

// ExpandedIcon returns the icon path with environment and home tokens
// expanded and validated as a resource locator.
func (p *Profile) ExpandedIcon() (string, error) {
	return parseResourceLocator(p.Icon)
}

// ExpandedBackgroundImagePath returns the background image path with
// environment and home tokens expanded and validated as a resource
// locator.
func (p *Profile) ExpandedBackgroundImagePath() (string, error) {
	return parseResourceLocator(p.BackgroundImagePath)
}

// parseResourceLocator interprets raw as a resource locator: a URI with
// an explicit scheme, or a filesystem path. Environment variables and a
// leading "~" are expanded first. Expansion failures and URI syntax
// failures are reported the same way; callers treat both as an invalid
// resource.
func parseResourceLocator(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty resource path")
	}

	expanded, err := expandPath(raw)
	if err != nil {
		return "", err
	}
	if expanded == "" {
		return "", fmt.Errorf("resource path %q expanded to nothing", raw)
	}
	if strings.ContainsAny(expanded, "\x00\n\r\t") {
		return "", fmt.Errorf("resource path %q contains control characters", raw)
	}

	u, err := url.Parse(expanded)
	if err != nil {
		return "", fmt.Errorf("resource path %q: %w", raw, err)
	}
	if u.Scheme != "" {
		return expanded, nil
	}
	return filepath.Clean(expanded), nil
}

// expandPath expands environment variables and a leading "~". A "~user"
// form is not supported and is an error.
func expandPath(raw string) (string, error) {
	s := os.ExpandEnv(raw)
	if strings.HasPrefix(s, "~") {
		if s != "~" && !strings.HasPrefix(s, "~/") {
			return "", fmt.Errorf("unsupported home reference in %q", raw)
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		s = home + strings.TrimPrefix(s, "~")
	}
	return s, nil
}
