package main

import (
	"context"

	"shop-backend/internal/config"
	"shop-backend/internal/db"
	"shop-backend/internal/logger"
	"shop-backend/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	log = log.With("app", "seed")

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalw("connect db", "error", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		log.Fatalw("seed apply", "error", err)
	}

	log.Info("seed applied")
}
