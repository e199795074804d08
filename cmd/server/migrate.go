package main

import (
	"context"
	"log"

	gormrepo "gravehold/internal/adapter/repo/gorm"
	"gravehold/internal/config"
	"gravehold/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return err
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("initialize logger: %v", err)
		}
		defer logg.Sync()

		if cfg.Database.DSN == "" {
			logg.Fatal("migrate requires DATABASE_DSN")
		}
		db, err := gormrepo.OpenPostgres(cfg.Database.DSN)
		if err != nil {
			return err
		}
		if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.Database.MigrationsDir); err != nil {
			return err
		}
		logg.Info("migrations applied", zap.String("dir", cfg.Database.MigrationsDir))
		return nil
	},
}
