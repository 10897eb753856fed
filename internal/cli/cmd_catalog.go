package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"college"},
		Short:   "List and extend the college catalog",
	}
	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogAddCmd(app),
		newCatalogProgramsCmd(app),
	)
	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List colleges and their programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(entries))
			return nil
		},
	}
}

func newCatalogAddCmd(app *App) *cobra.Command {
	var college, program string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a college with one program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Catalog.Add(cmd.Context(), college, program)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleGreen.Render("Added"),
				formatter.Bold(entry.College+": "+strings.Join(entry.Program, ", ")))
			return nil
		},
	}
	cmd.Flags().StringVar(&college, "college", "", "college name")
	cmd.Flags().StringVar(&program, "program", "", "program name")
	_ = cmd.MarkFlagRequired("college")
	_ = cmd.MarkFlagRequired("program")
	return cmd
}

func newCatalogProgramsCmd(app *App) *cobra.Command {
	var college string
	cmd := &cobra.Command{
		Use:   "programs",
		Short: "List the programs offered by a college",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			programs := admin.ProgramOptions(entries, college)
			if len(programs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No programs listed for "+college+"."))
				return nil
			}
			for _, p := range programs {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&college, "college", "", "college name")
	_ = cmd.MarkFlagRequired("college")
	return cmd
}
