package commands

import (
	"fmt"

	"github.com/ncobase/svcresp/config"
	"github.com/ncobase/svcresp/logging/logger"
	"github.com/ncobase/svcresp/net/resp"
	"github.com/spf13/cobra"
)

// app carries what the subcommands share once the root has loaded config.
type app struct {
	cfg     *config.Config
	factory *resp.Factory
	cleanup func()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		configFile string
		a          = &app{}
	)

	rootCmd := &cobra.Command{
		Use:           "svcresp",
		Short:         "Build standardized service responses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cleanup, err := logger.New(cfg.Logger)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}

			a.cfg = cfg
			a.cleanup = cleanup
			a.factory = cfg.Response.Factory(logger.StdLogger())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.cleanup != nil {
				a.cleanup()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "conf", "c", "", "config file path, e.g. ./config.yaml")

	rootCmd.AddCommand(
		NewRenderCommand(a),
		NewCodesCommand(a),
		NewVersionCommand(),
	)

	return rootCmd
}
