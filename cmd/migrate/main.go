package main

import (
	"context"

	"shop-backend/internal/config"
	"shop-backend/internal/db"
	"shop-backend/internal/logger"
	"shop-backend/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	log = log.With("app", "migrate")

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalw("connect db", "error", err)
	}
	defer pool.Close()

	version, err := migrate.Apply(ctx, pool)
	if err != nil {
		log.Fatalw("apply migrations", "error", err)
	}

	log.Infow("migrations applied", "version", version)
}
