package root

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
	"github.com/appengine-ltd/podo-rush/internal/ui"
)

var exportDir = "."

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
	addExportFlag(cmd)
	return cmd
}

func addExportFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&exportDir, "export-dir", ".", "where calendar .ics exports are written")
}

func runTUI(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(baseContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := openServices(true)
	if err != nil {
		return err
	}
	defer cleanup()

	return ui.NewApp(ui.AppConfig{
		Version:   build.Version,
		ExportDir: exportDir,
		Logger:    svc.log,
	}, newSession(svc)).Run(ctx)
}

func newSession(svc *services) *app.Session {
	return app.NewSession(app.Deps{
		Grape:    svc.rankings.Grape,
		Ticket:   svc.rankings.Ticket,
		Clock:    game.SystemClock{},
		Logger:   svc.log,
		PageSize: svc.rankings.PageSize,
	})
}

func baseContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
