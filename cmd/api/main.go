// @title                       FreelaConnect Marketplace API
// @version                     1.0
// @description                 Clients discover freelancers, send requests or hire directly, and review completed projects.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	_ "github.com/freelaconnect/marketplace-api/docs"
	"github.com/freelaconnect/marketplace-api/internal/api"
	"github.com/freelaconnect/marketplace-api/internal/api/handler"
	"github.com/freelaconnect/marketplace-api/internal/core/service"
	"github.com/freelaconnect/marketplace-api/internal/infrastructure/config"
	mongostore "github.com/freelaconnect/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/freelaconnect/marketplace-api/internal/infrastructure/db/redis"
	"github.com/freelaconnect/marketplace-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "marketplace-api",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server exited")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		AppName:        "marketplace-api",
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := mongostore.NewAuthRepository(db)
	directory := mongostore.NewDirectoryRepository(db)
	engagements := mongostore.NewEngagementRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := directory.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := engagements.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Services ---
	tx := mongostore.NewTxManager(mongoClient)
	cache := redisstore.NewRatingCache(rdb, cfg.Redis.RatingCacheTTL)
	ratings := service.NewRatingAggregator(engagements, cache, logger.Component("ratings"))
	discovery := service.NewDiscoveryService(directory, engagements, ratings, logger.Component("discovery"))

	router := api.NewRouter(api.Deps{
		Auth:        service.NewAuthService(users, directory, tx, cfg.JWTSecret, cfg.JWTTTL, logger.Component("auth")),
		Engagements: service.NewEngagementService(directory, engagements, tx, cache, logger.Component("engagement")),
		Discovery:   discovery,
		Profiles:    service.NewProfileService(directory, discovery, logger.Component("profile")),
		HealthChecks: map[string]handler.Checker{
			"mongodb": mongostore.Ping(mongoClient),
			"redis":   redisstore.Ping(rdb),
		},
		Logger: log,
	})

	// --- Serve until signalled ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := router.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}
