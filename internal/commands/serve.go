package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-petr/fund-manager/cmd/httpserver"
	"github.com/go-petr/fund-manager/internal/middleware"
	"github.com/go-petr/fund-manager/pkg/configpkg"
)

func newServeCommand() *cobra.Command {
	var (
		configDir string
		addr      string
		seedDemo  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configpkg.Load(configDir)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("addr") {
				config.ServerAddress = addr
			}

			if cmd.Flags().Changed("demo") {
				config.SeedDemo = seedDemo
			}

			logger := middleware.CreateLogger(config)

			server, err := httpserver.New(logger, config)
			if err != nil {
				logger.Error().Err(err).Msg("cannot create server")
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info().
				Str("address", config.ServerAddress).
				Bool("demo", config.SeedDemo).
				Msg("FUND MANAGER SERVER HAS STARTED")

			if err := server.Serve(ctx); err != nil {
				logger.Error().Err(err).Msg("server stopped with error")
				return err
			}

			logger.Info().Msg("server stopped gracefully")

			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config", "./configs", "directory holding app.env")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides SERVER_ADDRESS")
	cmd.Flags().BoolVar(&seedDemo, "demo", false, "load the demo ledger, overrides SEED_DEMO")

	return cmd
}
