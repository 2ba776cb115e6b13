package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cigen/pkg/logger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "cigen",
	Short: "cigen - CI workflow configuration generator",
	Long: `cigen generates declarative CI build-job configuration from the
compiled-in job catalog. The output is a YAML fragment consumed by the
workflow assembly pipeline; cigen itself performs no scheduling or
execution.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			logger.Warn("unknown log level, using INFO", "level", logLevel)
		}
		logger.SetLevel(level)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func globalFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("global", pflag.ContinueOnError)
	flags.StringVar(&logLevel, "log-level", "INFO",
		"Log level (DEBUG, INFO, WARN, ERROR)")
	return flags
}

func init() {
	rootCmd.PersistentFlags().AddFlagSet(globalFlags())

	// Add subcommands
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewVersionCmd())
}
