package settings

import (
	"errors"
	"fmt"
)

// Errors returned by settings operations.
var (
	// ErrProfileNotFound indicates a resolver lookup by GUID matched no profile.
	ErrProfileNotFound = errors.New("no profile with the given GUID")

	// ErrNotValidated indicates the resolver was invoked before validation ran.
	ErrNotValidated = errors.New("settings have not been validated")
)

// LoadErrorCode identifies an unrecoverable settings load failure.
type LoadErrorCode uint8

const (
	// NoProfiles indicates the settings contained no profiles at all.
	NoProfiles LoadErrorCode = iota

	// AllProfilesHidden indicates every profile was marked hidden.
	AllProfilesHidden
)

// String returns a stable name for the error code.
func (c LoadErrorCode) String() string {
	switch c {
	case NoProfiles:
		return "no_profiles"
	case AllProfilesHidden:
		return "all_profiles_hidden"
	default:
		return "unknown"
	}
}

// LoadError is a fatal settings validation failure. When validation
// returns a LoadError the settings object is unusable and the caller
// must fall back to the hardcoded defaults.
type LoadError struct {
	// Code identifies the failure.
	Code LoadErrorCode
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("settings load failed: %s", e.Code)
}
