package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shop-backend/internal/auth"
	"shop-backend/internal/cache"
	"shop-backend/internal/config"
	"shop-backend/internal/db"
	"shop-backend/internal/events"
	"shop-backend/internal/httpserver"
	"shop-backend/internal/logger"
	categoryrepo "shop-backend/internal/repository/category"
	countryrepo "shop-backend/internal/repository/country"
	orderrepo "shop-backend/internal/repository/order"
	productrepo "shop-backend/internal/repository/product"
	"shop-backend/internal/repository/unitofwork"
	categorysvc "shop-backend/internal/service/category"
	checkoutsvc "shop-backend/internal/service/checkout"
	geographysvc "shop-backend/internal/service/geography"
	ordersvc "shop-backend/internal/service/order"
	productsvc "shop-backend/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	log = log.With("app", "api")

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalw("connect to db", "error", err)
	}
	defer dbpool.Close()

	var referenceCache cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalw("connect to redis", "addr", cfg.RedisAddr, "error", err)
		}
		defer rdb.Close()
		referenceCache = cache.NewRedis(rdb, "shop:")
		log.Infow("reference data cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.ReferenceCacheTTL)
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPURL != "" {
		conn, ch, err := events.Connect(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalw("connect to rabbitmq", "error", err)
		}
		defer conn.Close()
		defer ch.Close()
		publisher = events.NewRabbitPublisher(ch, cfg.AMQPExchange, log)
		log.Infow("order events enabled", "exchange", cfg.AMQPExchange)
	}

	var verifier *auth.Verifier
	if cfg.JWTSecret != "" {
		verifier = auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	} else {
		log.Warn("JWT_SECRET not set, order history is unauthenticated")
	}

	uowFactory := unitofwork.NewFactory(dbpool, log)
	checkoutService := checkoutsvc.New(checkoutsvc.UnitOfWorkFactoryFunc(func() checkoutsvc.UnitOfWork {
		return uowFactory.Create()
	}), publisher, log)
	geographyService := geographysvc.New(countryrepo.NewPostgres(dbpool, log), referenceCache, cfg.ReferenceCacheTTL, log)
	productService := productsvc.New(productrepo.NewPostgres(dbpool, log))
	categoryService := categorysvc.New(categoryrepo.NewPostgres(dbpool))
	orderService := ordersvc.New(orderrepo.NewPostgres(dbpool, log))

	srv := httpserver.New(httpserver.Options{
		Addr:           cfg.HTTPAddr,
		BasePath:       cfg.BasePath,
		AllowedOrigins: cfg.AllowedOrigins,
	}, log, dbpool, httpserver.Deps{
		Checkout:   checkoutService,
		Geography:  geographyService,
		Products:   productService,
		Categories: categoryService,
		Orders:     orderService,
		Verifier:   verifier,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("starting http server", "addr", cfg.HTTPAddr, "basePath", cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Infow("shutting down", "signal", sig.String())
	case err := <-serverErr:
		log.Errorw("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	} else {
		log.Info("server stopped")
	}
}
