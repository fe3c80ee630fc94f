package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/database"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/lead"
)

func newImportLeadsCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-leads <leads.json>",
		Short: "Import leads exported from the browser admin list into PostgreSQL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			cfg, logger, err := loadRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			node, err := snowflake.NewNode(cfg.Site.NodeID)
			if err != nil {
				return fmt.Errorf("failed to create id generator: %w", err)
			}
			result, err := lead.ParseLegacyLeads(data, func() int64 { return node.Generate().Int64() })
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rejected := range result.Rejected {
				fmt.Fprintf(out, "%s %v\n", yellow("skip"), rejected)
			}
			fmt.Fprintf(out, "%s %d lead(s) valid, %d rejected\n", cyan("•"), len(result.Leads), len(result.Rejected))
			if dryRun {
				return nil
			}

			pg, err := database.NewPostgresService(database.PostgresConfig{
				Host:     cfg.Postgres.Host,
				Port:     cfg.Postgres.Port,
				User:     cfg.Postgres.User,
				Password: cfg.Postgres.Password,
				Database: cfg.Postgres.Database,
			}, logger)
			if err != nil {
				return err
			}
			defer pg.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			if _, err := database.Migrate(ctx, pg.GetDB(), logger); err != nil {
				return err
			}

			repo := lead.NewPostgresRepository(pg.GetDB(), logger)
			inserted := 0
			for _, l := range result.Leads {
				if err := repo.Insert(ctx, l); err != nil {
					logger.Warn("Lead import failed", zap.Int64("id", l.ID), zap.Error(err))
					fmt.Fprintf(out, "%s lead %d: %v\n", red("fail"), l.ID, err)
					continue
				}
				inserted++
			}
			fmt.Fprintf(out, "%s %d lead(s) imported\n", green("✓"), inserted)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without touching the database")
	return cmd
}
