package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the resolved profiles in order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newService().Load()
		if err != nil {
			return err
		}

		defGUID := s.Globals().DefaultProfile()
		bold := color.New(color.Bold)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tGUID\tSOURCE\tSCHEME")
		for i, p := range s.Profiles() {
			name := p.Name
			if p.GUID != nil && *p.GUID == defGUID {
				name = bold.Sprint(name + " (default)")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, name, p.GUIDString(), p.Source, p.ColorSchemeName)
		}
		return w.Flush()
	},
}
