package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/stormterm/internal/settings"
	"github.com/dshills/stormterm/internal/settings/generator"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a first-run settings.json",
	Long: `Generates a settings.json from the built-in template: the detected
login shell becomes the default profile, and every dynamically
generated profile is stamped in so it can be customized or hidden.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := settingsPath()
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		// Build settings from the defaults and generators alone so the
		// template can reference the detected shell profiles.
		s := settings.New(settings.WithGenerators(generator.Defaults()...))
		if err := s.LoadFromJSON([]byte("{}"), settings.DefaultSettings()); err != nil {
			return err
		}
		if err := s.Validate(); err != nil {
			return err
		}

		doc := s.ApplyFirstRunChanges(settings.SettingsTemplate(), settings.TemplateInfo{
			ProductName:           Product,
			Version:               Version,
			PreferredShellProfile: generator.PreferredShellProfileName(),
		})
		stamped, err := s.StampGeneratedProfiles([]byte(doc))
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, stamped, 0o644); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing settings.json")
}
