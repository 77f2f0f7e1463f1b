package main

import (
	"context"
	"flag"
	"log"

	"interview-prep/internal/config"
	"interview-prep/internal/database"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recently applied migration")
	force := flag.Int("force", -1, "mark this version as the clean schema head after a manual repair")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if *force >= 0 {
		if err := database.Force(ctx, db, uint(*force)); err != nil {
			l.Fatal("Failed to force migration version", zap.Error(err))
		}
		return
	}
	if *down {
		rolledBack, err := database.RollbackLast(ctx, db)
		if err != nil {
			l.Fatal("Failed to roll back migration", zap.Error(err))
		}
		l.Info("Rollback finished", zap.Bool("rolled_back", rolledBack))
		return
	}

	applied, err := database.RunMigrations(ctx, db)
	if err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations finished", zap.Int("applied", applied))
}
