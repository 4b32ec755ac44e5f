package admincli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaheenplus/shaheen-admin-go/export"
	"github.com/shaheenplus/shaheen-admin-go/listview"
	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

// statusAction maps one verb subcommand to a target status from the
// feature's transition table.
type statusAction struct {
	use   string
	short string
	to    string
}

// featureSpec describes how one dashboard feature surfaces in the CLI.
type featureSpec[T listview.Entity] struct {
	use     string
	short   string
	feature func(*shaheen.Client) listview.Feature[T]
	columns []export.Column
	cells   func(T) []string
	actions []statusAction
}

// featureCommand builds the per-feature command tree:
// list, select/show/deselect, the status verbs, delete, and export.
func featureCommand[T listview.Entity](app *App, spec featureSpec[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
	}

	newView := func() (listview.Feature[T], *listview.View[T]) {
		feat := spec.feature(app.Client())
		return feat, feat.NewView(app.Store(), app.Log())
	}

	var (
		filterFlags []string
		page        int
		clear       bool
		refresh     bool
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List " + spec.use + " with the persisted filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, view := newView()
			if clear {
				view.Filters.Clear()
			}
			for _, f := range filterFlags {
				k, v, ok := strings.Cut(f, "=")
				if !ok {
					return fmt.Errorf("bad --filter %q, want key=value", f)
				}
				view.Filters.Update(k, v)
			}
			if page > 0 {
				view.Filters.SetPage(page)
			}
			ctx, cancel := app.Ctx(cmd.Context())
			defer cancel()
			var (
				res *shaheen.ListResult[T]
				err error
			)
			if refresh {
				res, err = view.List.Refresh(ctx)
			} else {
				res, err = view.List.Load(ctx)
			}
			if err != nil {
				return err
			}
			PrintTable(headersOf(spec.columns), export.Rows(res.Items, spec.cells))
			PrintPageFooter(res.Pagination)
			return nil
		},
	}
	listCmd.Flags().StringArrayVar(&filterFlags, "filter", nil, "Set a filter, e.g. --filter status=مفتوح (repeatable)")
	listCmd.Flags().IntVar(&page, "page", 0, "Jump to a page (filters keep their persisted values)")
	listCmd.Flags().BoolVar(&clear, "clear-filters", false, "Reset filters and page before listing")
	listCmd.Flags().BoolVar(&refresh, "refresh", false, "Force-refetch the active page")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "select [id]",
		Short: "Open one row from the current page in the details view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, view := newView()
			ctx, cancel := app.Ctx(cmd.Context())
			defer cancel()
			res, err := view.List.Load(ctx)
			if err != nil {
				return err
			}
			for _, it := range res.Items {
				if it.EntityID() == id {
					view.Selection.Select(it)
					PrintJSON(it)
					return nil
				}
			}
			return fmt.Errorf("id %d is not on the current page", id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the persisted selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, view := newView()
			if cur, ok := view.Selection.Current(); ok {
				PrintJSON(cur)
				return nil
			}
			fmt.Println("no selection")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "deselect",
		Short: "Clear the persisted selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, view := newView()
			view.Selection.Clear()
			return nil
		},
	})

	for _, action := range spec.actions {
		action := action
		var reason string
		actCmd := &cobra.Command{
			Use:   action.use + " [id]",
			Short: action.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				_, view := newView()
				ctx, cancel := app.Ctx(cmd.Context())
				defer cancel()
				// Load the page first so the transition check sees the
				// current status.
				if _, err := view.List.Load(ctx); err != nil {
					return err
				}
				updated, err := view.Actions.Apply(ctx, id, action.to, reason)
				if err != nil {
					return err
				}
				PrintJSON(updated)
				return nil
			},
		}
		actCmd.Flags().StringVar(&reason, "reason", "", "Reason forwarded to the affected account/listing owner")
		cmd.AddCommand(actCmd)
	}

	var yes bool
	delCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Permanently delete one " + strings.TrimSuffix(spec.use, "s"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, view := newView()
			ctx, cancel := app.Ctx(cmd.Context())
			defer cancel()
			if err := view.Actions.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("deleted %d\n", id)
			return nil
		},
	}
	delCmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	cmd.AddCommand(delCmd)

	var (
		format string
		out    string
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all pages matching the persisted filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			feat, view := newView()
			ctx, cancel := app.Ctx(cmd.Context())
			defer cancel()
			pager := &shaheen.Pager[T]{Fetch: func(ctx context.Context, page int) (*shaheen.ListResult[T], error) {
				q := view.Filters.Query(100)
				q.Set("page", strconv.Itoa(page))
				return feat.Fetch(ctx, q)
			}}
			items, err := pager.All(ctx)
			if err != nil {
				return err
			}
			doc := export.Document{
				Title:       spec.short,
				Columns:     spec.columns,
				Rows:        export.Rows(items, spec.cells),
				GeneratedAt: time.Now(),
			}
			var b []byte
			switch format {
			case "pdf":
				b, err = export.PDF(doc)
			case "xlsx":
				b, err = export.Excel(doc)
			default:
				return fmt.Errorf("unknown format %q, want pdf or xlsx", format)
			}
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("%s-%s.%s", spec.use, time.Now().Format("20060102-150405"), format)
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d rows)\n", out, len(items))
			return nil
		},
	}
	exportCmd.Flags().StringVar(&format, "format", "xlsx", "Output format: pdf or xlsx")
	exportCmd.Flags().StringVar(&out, "out", "", "Output file (defaults to <feature>-<timestamp>.<format>)")
	cmd.AddCommand(exportCmd)

	return cmd
}

func headersOf(cols []export.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
