package generator

import "github.com/dshills/stormterm/internal/settings"

// Defaults returns the built-in generator set in the order their
// profiles should appear after user and default profiles.
func Defaults() []settings.ProfileGenerator {
	return []settings.ProfileGenerator{
		&LoginShellGenerator{},
		&ContainerDistroGenerator{},
		&CloudShellGenerator{},
		&LuaGenerator{},
	}
}
