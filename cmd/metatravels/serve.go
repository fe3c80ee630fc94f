package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the advisor brief worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Info("Meta Travels starting...",
				zap.String("version", version),
				zap.String("log_level", cfg.Logging.Level),
			)

			buildCtx, buildCancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			container, err := app.Build(buildCtx, cfg, logger)
			buildCancel()
			if err != nil {
				logger.Error("Failed to assemble application services", zap.Error(err))
				return err
			}
			defer container.Close()

			if container.Worker != nil {
				if err := container.Worker.Start(); err != nil {
					return err
				}
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			errCh := make(chan error, 1)
			go func() {
				errCh <- container.Server.Start()
			}()

			select {
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
			case err = <-errCh:
				if err != nil {
					logger.Error("HTTP server error", zap.Error(err))
				}
			}

			logger.Info("Shutting down gracefully...")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()

			if shutdownErr := container.Server.Shutdown(shutdownCtx); shutdownErr != nil {
				logger.Error("Error during HTTP shutdown", zap.Error(shutdownErr))
			}
			if container.Worker != nil {
				container.Worker.Shutdown()
			}

			logger.Info("Shutdown complete")
			return err
		},
	}
}
