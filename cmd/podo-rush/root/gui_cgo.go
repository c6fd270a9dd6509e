//go:build cgo
// +build cgo

package root

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/podo-rush/internal/gui"
)

const guiAvailable = true

func newGUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop client",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd)
		},
	}
	addExportFlag(cmd)
	return cmd
}

func runGUI(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(baseContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := openServices(true)
	if err != nil {
		return err
	}
	defer cleanup()

	return gui.NewApp(gui.AppConfig{
		Version:   build.Version,
		ExportDir: exportDir,
		Logger:    svc.log,
	}, newSession(svc)).Run(ctx)
}
