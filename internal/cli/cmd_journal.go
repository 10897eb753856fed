package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errJournalDisabled = errors.New("journal is disabled (journal_path is empty)")

func newJournalCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recent local activity (adds and deletes)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Journal == nil {
				return errJournalDisabled
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			entries, err := app.Journal.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatJournal(entries, time.Now()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries")
	cmd.AddCommand(newJournalShowCmd(app))
	return cmd
}

func newJournalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one journal entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Journal == nil {
				return errJournalDisabled
			}
			e, err := app.Journal.GetByID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("journal entry %s: %w", args[0], err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatJournalEntry(e))
			return nil
		},
	}
}
