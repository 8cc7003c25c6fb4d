package main

import (
	"github.com/spf13/cobra"

	"github.com/Pings-Lab/pings-lab.github.io/config"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/logger"
)

// newRootCommand builds the command tree. Running the binary without a
// subcommand serves the site.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "site",
		Short: "Ping's Lab website server",
		Long: `Serves the Ping's Lab marketing site and forwards contact and
product-notify submissions to the configured form endpoint.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newSubmitCommand())
	return root
}

// loadConfig reads configuration and initializes the logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel, cfg.IsProduction())
	return cfg, nil
}
