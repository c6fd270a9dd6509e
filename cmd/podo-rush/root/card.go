package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/podo-rush/internal/ranking"
	"github.com/appengine-ltd/podo-rush/internal/ui"
)

func newExportCardCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "export-card <grape|ticket> <out.png>",
		Short: "Render a ranking page as a PNG card",
		Args: cobra.MatchAll(cobra.ExactArgs(2), func(cmd *cobra.Command, args []string) error {
			_, err := ranking.GameBySlug(args[0])
			return err
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _ := ranking.GameBySlug(args[0])
			path := args[1]

			svc, cleanup, err := openServices(false)
			if err != nil {
				return err
			}
			defer cleanup()

			view := svc.rankings.For(g).View(baseContext(cmd), page, svc.rankings.PageSize)
			if err := ranking.SaveCard(path, g, view); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("wrote", path))
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to render")
	return cmd
}
