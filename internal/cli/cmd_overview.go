package cli

import (
	"fmt"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOverviewCmd(app *App) *cobra.Command {
	var pf pairFlags
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show every record kind for one college program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := admin.LoadOverview(cmd.Context(), app.Stores, pf.pair())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverview(ov))
			return nil
		},
	}
	pf.bind(cmd.Flags())
	requirePair(cmd)
	return cmd
}
