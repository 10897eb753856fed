package cli

import (
	"fmt"

	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Read submitted feedback",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all feedback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Feedback.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFeedback(entries))
			return nil
		},
	})
	return cmd
}
