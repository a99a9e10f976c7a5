package settings

import (
	"fmt"

	"github.com/google/uuid"
)

// guidStringLength is the length of a braced GUID string, e.g.
// "{61c54bbd-c2c6-5271-96e7-009a87ff44bf}". Used as a fast-path guard
// before attempting a real parse.
const guidStringLength = 38

// NewTerminalArgs describes a new-session request. Every field is
// optional; unset fields fall through to the profile's own values.
type NewTerminalArgs struct {
	// Profile selects a profile by braced GUID string or by name.
	Profile string

	// ProfileIndex selects the Nth profile. An out-of-range index is
	// ignored, not an error.
	ProfileIndex *int

	// Session overrides. Each is applied only when non-empty; an empty
	// override never clobbers the profile's value.
	Commandline       string
	StartingDirectory string
	TabTitle          string
}

// lookupMatch tags how a profile token was resolved.
type lookupMatch uint8

const (
	matchNone lookupMatch = iota
	matchGUID
	matchName
)

// lookupResult is the outcome of resolving a profile token.
type lookupResult struct {
	match lookupMatch
	guid  uuid.UUID
}

// BuildSettings resolves the args to one profile and materializes its
// effective settings: the profile's fields, its color scheme, the
// global session fields, and finally any per-session overrides from the
// args. Returns the chosen profile's GUID alongside the settings.
//
// Resolution precedence: profile token (GUID, then name), then index,
// then the default profile.
func (s *Settings) BuildSettings(args *NewTerminalArgs) (uuid.UUID, *TerminalSettings, error) {
	guid := s.profileForArgs(args)
	ts, err := s.BuildSettingsForGUID(guid)
	if err != nil {
		return uuid.Nil, nil, err
	}

	if args != nil {
		if args.Commandline != "" {
			ts.Commandline = args.Commandline
		}
		if args.StartingDirectory != "" {
			ts.StartingDirectory = args.StartingDirectory
		}
		if args.TabTitle != "" {
			ts.StartingTitle = args.TabTitle
		}
	}

	return guid, ts, nil
}

// BuildSettingsForGUID materializes effective settings for the profile
// with the given GUID. A GUID that matches no profile is a caller
// error, reported as ErrProfileNotFound.
func (s *Settings) BuildSettingsForGUID(guid uuid.UUID) (*TerminalSettings, error) {
	if !s.validated {
		return nil, ErrNotValidated
	}
	p := s.profiles.FindProfile(guid)
	if p == nil {
		return nil, fmt.Errorf("%w: {%s}", ErrProfileNotFound, guid)
	}

	ts := p.CreateTerminalSettings(s.globals.ColorSchemes())
	s.globals.ApplyToSettings(ts)
	return ts, nil
}

// profileForArgs picks the profile GUID for a new-session request:
// the profile token if it resolves, else the index if it's in range,
// else the default profile.
func (s *Settings) profileForArgs(args *NewTerminalArgs) uuid.UUID {
	if args != nil {
		if args.Profile != "" {
			if res := s.lookupProfile(args.Profile); res.match != matchNone {
				return res.guid
			}
		}
		if args.ProfileIndex != nil {
			if guid, ok := s.profileGUIDByIndex(*args.ProfileIndex); ok {
				return guid
			}
		}
	}
	return s.globals.DefaultProfile()
}

// lookupProfile resolves a token that may be a braced GUID string or a
// profile name. The GUID path is tried only when the token has the
// right shape (38 characters, leading brace) and actually parses and
// matches a profile; otherwise the token is compared against profile
// names. A token matching neither resolves to matchNone — the caller
// decides the fallback.
func (s *Settings) lookupProfile(token string) lookupResult {
	if token == "" {
		return lookupResult{match: matchNone}
	}

	if len(token) == guidStringLength && token[0] == '{' {
		if guid, err := uuid.Parse(token); err == nil {
			if s.profiles.FindProfile(guid) != nil {
				return lookupResult{match: matchGUID, guid: guid}
			}
		}
	}

	for _, p := range s.profiles.Profiles() {
		if p.Name == token && p.GUID != nil {
			return lookupResult{match: matchName, guid: *p.GUID}
		}
	}

	return lookupResult{match: matchNone}
}

// profileGUIDByIndex returns the Nth profile's GUID. Out-of-range
// indices report false rather than an error.
func (s *Settings) profileGUIDByIndex(index int) (uuid.UUID, bool) {
	if index < 0 || index >= s.profiles.Len() {
		return uuid.Nil, false
	}
	return *s.profiles.At(index).GUID, true
}
