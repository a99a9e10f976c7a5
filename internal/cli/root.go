// Package cli implements the stormterm settings command line.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/stormterm/internal/settings"
	"github.com/dshills/stormterm/internal/settings/generator"
)

// Version information (set via ldflags during build).
var (
	Version = "dev"
	Product = "stormterm"
)

var cfgPath string

// rootCmd is the root command.
var rootCmd = &cobra.Command{
	Use:   "stormterm",
	Short: "Inspect and validate stormterm terminal settings",
	Long: `stormterm settings tooling.

Loads the user settings.json, overlays the built-in defaults and the
dynamic profile generators, runs the validation pipeline and reports
what a new terminal session would actually get.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to settings.json (default: $XDG_CONFIG_HOME/stormterm/settings.json)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(initCmd)
}

// settingsPath returns the user settings file path.
func settingsPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stormterm", "settings.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stormterm", "settings.json")
}

// newService builds the settings service with the built-in generators.
func newService() *settings.Service {
	return settings.NewService(settingsPath(),
		settings.WithServiceGenerators(generator.Defaults()...))
}
