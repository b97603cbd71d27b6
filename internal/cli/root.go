package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/bookrange/internal/config"
	"github.com/Flyrell/bookrange/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	appConfig config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "bookrange",
	Short:         "Count overlapping bookings per day and merge booking ranges",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		cfg, err := config.Load(wd)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		debug, _ := cmd.Flags().GetBool("debug")
		logger = logging.New(cmd.ErrOrStderr(), debug || cfg.Debug)
		logger.Debug("config loaded", zap.String("dir", wd), zap.String("file", cfg.File))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "print debug logs to stderr")
	rootCmd.SetHelpFunc(styledHelpFunc())

	rootCmd.AddCommand(countsCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	defer func() { _ = logger.Sync() }()

	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), Error("Error: "+err.Error()))
	}
	return err
}
