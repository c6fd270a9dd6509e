//go:build !cgo
// +build !cgo

package root

import (
	"errors"

	"github.com/spf13/cobra"
)

const guiAvailable = false

var errNoGUI = errors.New("the desktop client requires a cgo build; use `podo-rush tui`")

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop client (cgo builds only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd)
		},
	}
}

func runGUI(*cobra.Command) error {
	return errNoGUI
}
