package root

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/appengine-ltd/podo-rush/internal/ranking"
	"github.com/appengine-ltd/podo-rush/internal/ui"
)

func gameArgs() cobra.PositionalArgs {
	return cobra.MatchAll(cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		_, err := ranking.GameBySlug(args[0])
		return err
	})
}

func newRankingsCmd() *cobra.Command {
	var (
		page   int
		format string
	)
	cmd := &cobra.Command{
		Use:       "rankings <grape|ticket>",
		Short:     "Print a ranking list",
		Args:      gameArgs(),
		ValidArgs: []string{ranking.Grape.Slug, ranking.Ticket.Slug},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _ := ranking.GameBySlug(args[0])

			svc, cleanup, err := openServices(false)
			if err != nil {
				return err
			}
			defer cleanup()

			repo := svc.rankings.For(g)
			ctx := baseContext(cmd)
			out := cmd.OutOrStdout()

			switch strings.ToLower(format) {
			case "csv":
				return ranking.WriteCSV(out, repo.Load(ctx))
			case "json":
				return ranking.WriteJSON(out, g, repo.Load(ctx))
			case "", "table":
				view := repo.View(ctx, page, svc.rankings.PageSize)
				writeTable(out, g, view, isTerminal(out))
				return nil
			default:
				return fmt.Errorf("unknown format %q (want table, csv or json)", format)
			}
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to show in table format")
	cmd.Flags().StringVar(&format, "format", "table", "table, csv or json")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeTable(w io.Writer, g ranking.Game, v ranking.View, styled bool) {
	paint := func(s string, style func(...string) string) string {
		if styled {
			return style(s)
		}
		return s
	}

	title := g.Title + " Rankings"
	if styled {
		title = ui.Heading(title)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, paint(fmt.Sprintf("page %d/%d, %d records", v.Page.Number, v.Page.TotalPages, v.Page.Total), ui.Muted.Render))
	fmt.Fprintln(w)

	if len(v.Rows) == 0 {
		fmt.Fprintln(w, "No records yet. Be the first!")
		return
	}
	fmt.Fprintln(w, paint(fmt.Sprintf("%4s  %-24s %10s", "#", "name", "seconds"), ui.H2.Render))
	for _, r := range v.Rows {
		line := fmt.Sprintf("%4d  %-24s %9ss", r.Rank, r.Entry.Name, ranking.FormatTime(r.Entry))
		switch {
		case r.Highlighted:
			line = paint(line, ui.SelectedRow.Render)
		case r.Rank <= 3:
			line = paint(line, ui.Gold.Render)
		}
		fmt.Fprintln(w, line)
	}
	if v.LastName != "" {
		fmt.Fprintln(w)
		if styled {
			fmt.Fprintln(w, ui.LabelValue("Last played as", v.LastName))
		} else {
			fmt.Fprintf(w, "Last played as: %s\n", v.LastName)
		}
	}
}
