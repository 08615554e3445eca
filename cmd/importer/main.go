package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"shop-backend/internal/config"
	"shop-backend/internal/db"
	"shop-backend/internal/importer"
	"shop-backend/internal/logger"
	"shop-backend/internal/repository/category"
	"shop-backend/internal/repository/product"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to product catalog CSV (sku,name,description,unitPrice,imageUrl,unitsInStock,category,active)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	log = log.With("app", "importer")

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalw("connect db", "error", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalw("open file", "path", filePath, "error", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, product.NewPostgres(pool, log), category.NewPostgres(pool))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalw("import failed", "imported", count, "error", err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
