package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// storeOf picks one kind's store out of the wired App. Stores are only
// available after the root command's Builder has run.
type storeOf[T domain.Record] func(admin.Stores) admin.Store[T]

// pairFlags binds --college and --program.
type pairFlags struct {
	college string
	program string
}

func (p *pairFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&p.college, "college", "", "college name")
	fs.StringVar(&p.program, "program", "", "program name")
}

func (p *pairFlags) pair() domain.Pair {
	return domain.Pair{College: p.college, Program: p.program}
}

func requirePair(cmd *cobra.Command) {
	_ = cmd.MarkFlagRequired("college")
	_ = cmd.MarkFlagRequired("program")
}

// newKindCmd builds the list/add/delete command group for one kind. The
// add flags mirror the kind's fields.
func newKindCmd[T domain.Record](app *App, kind admin.Kind[T], store storeOf[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.Name,
		Short: fmt.Sprintf("Manage %s for a college program", strings.ToLower(kind.Label)),
	}
	editor := func() *admin.Editor[T] {
		return admin.NewEditor(kind, store(app.Stores), app.recorder(), app.logger())
	}
	cmd.AddCommand(
		newKindListCmd(kind, editor),
		newKindAddCmd(kind, editor),
		newKindDeleteCmd(kind, editor),
	)
	return cmd
}

func newKindListCmd[T domain.Record](kind admin.Kind[T], editor func() *admin.Editor[T]) *cobra.Command {
	var pf pairFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s for --college and --program", strings.ToLower(kind.Label)),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := editor()
			out := e.ApplyFetch(e.Fetch(cmd.Context(), e.Select(pf.pair())))
			if out.Err != nil {
				return out.Err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecords(kind, e.Items()))
			return nil
		},
	}
	pf.bind(cmd.Flags())
	requirePair(cmd)
	return cmd
}

func newKindAddCmd[T domain.Record](kind admin.Kind[T], editor func() *admin.Editor[T]) *cobra.Command {
	var pf pairFlags
	raw := make([]string, len(kind.Fields))
	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a %s to --college and --program", kind.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(admin.Values, len(kind.Fields))
			for i, f := range kind.Fields {
				values[f.Key] = raw[i]
			}
			e := editor()
			res := e.Submit(cmd.Context(), e.Select(pf.pair()), values)
			if res.Err != nil {
				return res.Err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				formatter.StyleGreen.Render("Added"), kind.Name,
				formatter.Bold(string(res.Item.RecordID())))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecords(kind, []T{res.Item}))
			return nil
		},
	}
	pf.bind(cmd.Flags())
	requirePair(cmd)
	for i, f := range kind.Fields {
		usage := f.Title
		if f.Date {
			usage += "; stored as UTC midnight"
		}
		cmd.Flags().StringVar(&raw[i], f.Key, "", usage)
	}
	return cmd
}

func newKindDeleteCmd[T domain.Record](kind admin.Kind[T], editor func() *admin.Editor[T]) *cobra.Command {
	var pf pairFlags
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s by id", kind.Name),
		Long: fmt.Sprintf(`Delete a %s by id. --college and --program are optional and only
label the activity journal entry.`, kind.Name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := editor()
			id := domain.ID(args[0])
			res := e.RemoveByID(cmd.Context(), e.Select(pf.pair()), id)
			if res.Err != nil {
				return res.Err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				formatter.StyleGreen.Render("Deleted"), kind.Name, formatter.Bold(string(id)))
			return nil
		},
	}
	pf.bind(cmd.Flags())
	return cmd
}
