package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/podo-rush/internal/config"
	"github.com/appengine-ltd/podo-rush/internal/ui"
)

// BuildInfo is stamped by the linker in main.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var (
	build BuildInfo
	flags config.Flags
)

var rootCmd = &cobra.Command{
	Use:   "podo-rush",
	Short: "PODO RUSH: grape finding, ticketing practice and a concert calendar",
	Long: "PODO RUSH is a local, single-player ticketing-practice toy. Without a\n" +
		"subcommand it opens the desktop client when built with cgo and the\n" +
		"terminal client otherwise.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if guiAvailable {
			return runGUI(cmd)
		}
		return runTUI(cmd)
	},
}

func Execute(info BuildInfo) {
	build = info
	rootCmd.Version = info.Version
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.DataDir, "data-dir", "", "directory holding rankings and logs")
	pf.StringVar(&flags.Store, "store", "", "storage backend: badger, sqlite or memory")
	pf.StringVar(&flags.LogLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&flags.LogFormat, "log-format", "", "pretty or json")
	pf.StringVar(&flags.Env, "env", "", "development or production")
	pf.StringVar(&flags.PageSize, "page-size", "", "ranking rows per page")
	pf.StringVar(&flags.EnvFile, "env-file", "", "dotenv file to read (default .env)")

	rootCmd.AddCommand(
		newTUICmd(),
		newGUICmd(),
		newRankingsCmd(),
		newResetCmd(),
		newExportCardCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}
