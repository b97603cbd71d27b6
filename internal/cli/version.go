package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo records build metadata injected through -ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var versionCmd = LeafCommand{
	Use:   "version",
	Short: "Print the version information",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "short", Shorthand: "s", Usage: "print only the version number"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")
		return runVersion(cmd, short)
	},
}.Build()

func runVersion(cmd *cobra.Command, short bool) error {
	line := fmt.Sprintf("bookrange %s (commit: %s, built: %s)", appVersion, appCommit, appDate)
	if short {
		line = appVersion
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}
