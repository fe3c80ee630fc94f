package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/config"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "metatravels",
	Short:         "Meta Travels backend: emotional-profile diagnosis, weather planner and concierge",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newForecastCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newImportLeadsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("Error:"), err)
		os.Exit(1)
	}
}

// loadRuntime reads the configuration and builds the logger shared by the
// commands that talk to infrastructure.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger, nil
}
