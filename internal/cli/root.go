package cli

import (
	"fmt"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/config"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/spf13/cobra"
)

// Builder wires app from the effective configuration. It runs once, after
// flags are parsed and before any subcommand. Tests pass a nil Builder and
// a pre-wired App.
type Builder func(app *App, cfg config.Config, verbose bool) error

// NewRootCmd creates the top-level "campusadmin" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App, build Builder) *cobra.Command {
	var (
		configPath string
		baseURL    string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "campusadmin",
		Short: "Admin dashboard for the college program catalog",
		Long: `Manage colleges, programs and their prerequisites, tasks, notes and
resources on the remote admin API, and read submitted feedback.

Run without a subcommand in a terminal to open the interactive dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if build == nil {
				return nil
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = baseURL
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("--base-url: %w", err)
				}
			}
			return build(app, cfg, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.campusadmin/config.yaml)")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "remote API origin (overrides config)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")

	root.AddCommand(
		newCatalogCmd(app),
		newKindCmd(app, admin.PrerequisiteKind, func(s admin.Stores) admin.Store[domain.Prerequisite] { return s.Prerequisites }),
		newKindCmd(app, admin.TaskKind, func(s admin.Stores) admin.Store[domain.Task] { return s.Tasks }),
		newKindCmd(app, admin.NoteKind, func(s admin.Stores) admin.Store[domain.Note] { return s.Notes }),
		newKindCmd(app, admin.ResourceKind, func(s admin.Stores) admin.Store[domain.Resource] { return s.Resources }),
		newFeedbackCmd(app),
		newOverviewCmd(app),
		newJournalCmd(app),
	)

	return root
}
