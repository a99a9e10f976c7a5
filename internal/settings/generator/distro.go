package generator

import (
	"bufio"
	"os"
	"strings"

	"github.com/dshills/stormterm/internal/settings"
)

// DistroNamespace is the source tag for container distro profiles.
const DistroNamespace = "stormterm.distro"

// ContainerDistroGenerator creates a profile for the distro the
// terminal is running inside when that's a container. Outside of a
// container it generates nothing.
type ContainerDistroGenerator struct {
	// OSReleasePath overrides the os-release path. Empty means
	// /etc/os-release.
	OSReleasePath string

	// ContainerMarkers are the files whose presence indicates a
	// container. Empty means the conventional docker/podman markers.
	ContainerMarkers []string
}

// Namespace implements settings.ProfileGenerator.
func (g *ContainerDistroGenerator) Namespace() string {
	return DistroNamespace
}

// Generate implements settings.ProfileGenerator.
func (g *ContainerDistroGenerator) Generate() ([]*settings.Profile, error) {
	markers := g.ContainerMarkers
	if len(markers) == 0 {
		markers = []string{"/.dockerenv", "/run/.containerenv"}
	}
	inContainer := false
	for _, marker := range markers {
		if _, err := os.Stat(marker); err == nil {
			inContainer = true
			break
		}
	}
	if !inContainer {
		return nil, nil
	}

	path := g.OSReleasePath
	if path == "" {
		path = "/etc/os-release"
	}
	name := prettyName(path)
	if name == "" {
		name = "Container"
	}

	guid := settings.DeriveGUID(settings.Source(DistroNamespace), name)
	return []*settings.Profile{{
		GUID:              &guid,
		Name:              name,
		Source:            settings.Source(DistroNamespace),
		Commandline:       "/bin/sh -l",
		StartingDirectory: "~",
	}}, nil
}

// prettyName reads PRETTY_NAME from an os-release file, or "" when the
// file is missing or doesn't carry one.
func prettyName(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if value, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}
