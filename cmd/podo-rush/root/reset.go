package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/podo-rush/internal/ranking"
	"github.com/appengine-ltd/podo-rush/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset <grape|ticket>",
		Short: "Delete a ranking list and its last-used name",
		Args:  gameArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _ := ranking.GameBySlug(args[0])
			if !yes {
				return errors.New("refusing to reset without --yes")
			}

			svc, cleanup, err := openServices(false)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.rankings.For(g).Reset(baseContext(cmd)); err != nil {
				return fmt.Errorf("reset %s: %w", g.Slug, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("✓ "+g.Title+" rankings cleared"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the reset")
	return cmd
}
