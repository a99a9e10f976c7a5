package generator

import (
	"os"
	"strings"

	"github.com/dshills/stormterm/internal/settings"
)

// CloudNamespace is the source tag for cloud shell profiles.
const CloudNamespace = "stormterm.cloud"

// cloudEndpointsEnv lists remote shell endpoints, comma separated, e.g.
// "dev@build1.example.com,ops@bastion". One profile is generated per
// endpoint.
const cloudEndpointsEnv = "STORMTERM_CLOUD_ENDPOINTS"

// CloudShellGenerator creates one ssh profile per configured cloud
// endpoint. Without configured endpoints it generates nothing.
type CloudShellGenerator struct {
	// Endpoints overrides the environment lookup, mainly for tests.
	Endpoints []string
}

// Namespace implements settings.ProfileGenerator.
func (g *CloudShellGenerator) Namespace() string {
	return CloudNamespace
}

// Generate implements settings.ProfileGenerator.
func (g *CloudShellGenerator) Generate() ([]*settings.Profile, error) {
	endpoints := g.Endpoints
	if endpoints == nil {
		for _, e := range strings.Split(os.Getenv(cloudEndpointsEnv), ",") {
			if e = strings.TrimSpace(e); e != "" {
				endpoints = append(endpoints, e)
			}
		}
	}

	profiles := make([]*settings.Profile, 0, len(endpoints))
	for _, endpoint := range endpoints {
		guid := settings.DeriveGUID(settings.Source(CloudNamespace), endpoint)
		profiles = append(profiles, &settings.Profile{
			GUID:        &guid,
			Name:        "Cloud Shell (" + endpoint + ")",
			Source:      settings.Source(CloudNamespace),
			Commandline: "ssh " + endpoint,
		})
	}
	return profiles, nil
}
