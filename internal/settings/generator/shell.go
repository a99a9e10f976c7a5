// Package generator provides the built-in dynamic profile generators.
//
// Each generator synthesizes profiles for things the user never
// declared: installed login shells, container distros, configured cloud
// endpoints and user Lua scripts. Generated profile GUIDs are derived
// deterministically from the generator namespace and the subject, so a
// generated profile keeps its GUID across reloads and users can pin or
// hide it from their own settings.json.
package generator

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/stormterm/internal/settings"
)

// ShellNamespace is the source tag for login shell profiles.
const ShellNamespace = "stormterm.shell"

// LoginShellGenerator creates one profile per login shell listed in
// /etc/shells, plus the current $SHELL if it isn't listed.
type LoginShellGenerator struct {
	// ShellsPath overrides the shells database path. Empty means
	// /etc/shells.
	ShellsPath string
}

// Namespace implements settings.ProfileGenerator.
func (g *LoginShellGenerator) Namespace() string {
	return ShellNamespace
}

// Generate implements settings.ProfileGenerator.
func (g *LoginShellGenerator) Generate() ([]*settings.Profile, error) {
	path := g.ShellsPath
	if path == "" {
		path = "/etc/shells"
	}

	var shells []string
	seen := make(map[string]bool)
	add := func(shellPath string) {
		name := ProfileNameForShell(shellPath)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		shells = append(shells, shellPath)
	}

	f, err := os.Open(path)
	if err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			add(line)
		}
		f.Close()
	}

	if env := os.Getenv("SHELL"); env != "" {
		add(env)
	}

	profiles := make([]*settings.Profile, 0, len(shells))
	for _, shellPath := range shells {
		name := ProfileNameForShell(shellPath)
		guid := settings.DeriveGUID(settings.Source(ShellNamespace), shellPath)
		profiles = append(profiles, &settings.Profile{
			GUID:              &guid,
			Name:              name,
			Source:            settings.Source(ShellNamespace),
			Commandline:       shellPath + " -l",
			StartingDirectory: "~",
		})
	}
	return profiles, nil
}

// PreferredShellProfileName returns the profile name for the user's
// $SHELL, falling back to "Bash". Used to pick the default profile for
// first-run settings.
func PreferredShellProfileName() string {
	if env := os.Getenv("SHELL"); env != "" {
		if name := ProfileNameForShell(env); name != "" {
			return name
		}
	}
	return "Bash"
}

// ProfileNameForShell derives a display name from a shell path:
// "/usr/bin/zsh" becomes "Zsh".
func ProfileNameForShell(shellPath string) string {
	base := filepath.Base(shellPath)
	if base == "." || base == "/" || base == "" {
		return ""
	}
	return strings.ToUpper(base[:1]) + base[1:]
}
