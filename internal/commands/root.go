package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/buildinfo"
	"github.com/trackwise-dev/trackwise/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "trackwise",
		Short:   "Personal expense tracking from the command line",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newLoginCommand(opts))
	rootCmd.AddCommand(newLogoutCommand(opts))
	rootCmd.AddCommand(newRegisterCommand(opts))
	rootCmd.AddCommand(newWhoamiCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newAddCommand(opts))
	rootCmd.AddCommand(newUpdateCommand(opts))
	rootCmd.AddCommand(newDeleteCommand(opts))
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(newChartCommand(opts))
	rootCmd.AddCommand(newImportCommand(opts))
	rootCmd.AddCommand(newActivityCommand(opts))

	return rootCmd
}
