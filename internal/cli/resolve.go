package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/stormterm/internal/settings"
)

var resolveFlags struct {
	profile string
	index   int
	cmdline string
	cwd     string
	title   string
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the effective settings for a new session",
	Long: `Resolves a new-session request exactly the way the terminal would:
the --profile token (GUID or name) wins over --index, which wins over
the configured default profile. Session overrides are layered last.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newService().Load()
		if err != nil {
			return err
		}

		args := settings.NewTerminalArgs{
			Profile:           resolveFlags.profile,
			Commandline:       resolveFlags.cmdline,
			StartingDirectory: resolveFlags.cwd,
			TabTitle:          resolveFlags.title,
		}
		if cmd.Flags().Changed("index") {
			args.ProfileIndex = &resolveFlags.index
		}

		guid, ts, err := s.BuildSettings(&args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "profile:            {%s}\n", guid)
		fmt.Fprintf(out, "commandline:        %s\n", ts.Commandline)
		fmt.Fprintf(out, "startingDirectory:  %s\n", ts.StartingDirectory)
		fmt.Fprintf(out, "startingTitle:      %s\n", ts.StartingTitle)
		fmt.Fprintf(out, "size:               %dx%d\n", ts.InitialCols, ts.InitialRows)
		fmt.Fprintf(out, "foreground:         %s\n", ts.Foreground.Hex())
		fmt.Fprintf(out, "background:         %s\n", ts.Background.Hex())
		fmt.Fprintf(out, "keybindings:        %d\n", len(ts.Keybindings))
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveFlags.profile, "profile", "", "profile GUID or name")
	resolveCmd.Flags().IntVar(&resolveFlags.index, "index", 0, "profile index")
	resolveCmd.Flags().StringVar(&resolveFlags.cmdline, "cmd", "", "override the command line")
	resolveCmd.Flags().StringVar(&resolveFlags.cwd, "cwd", "", "override the starting directory")
	resolveCmd.Flags().StringVar(&resolveFlags.title, "title", "", "override the starting title")
}
