package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/stormterm/internal/settings"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the settings, reporting every warning",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newService().Load()

		var fatal *settings.LoadError
		if errors.As(err, &fatal) {
			color.New(color.FgRed, color.Bold).Fprintf(cmd.ErrOrStderr(),
				"fatal: %s — falling back to default settings\n", fatal.Code)
			return err
		}
		if err != nil {
			return err
		}

		warnings := s.Warnings()
		if len(warnings) == 0 {
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "settings OK")
			return nil
		}

		yellow := color.New(color.FgYellow)
		for _, w := range warnings {
			yellow.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w.Message())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d warning(s); settings repaired in memory\n", len(warnings))
		return nil
	},
}
