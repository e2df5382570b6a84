package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/pulsedash/dashboard-api/internal/api"
	"github.com/pulsedash/dashboard-api/internal/api/handler"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
	"github.com/pulsedash/dashboard-api/internal/core/service"
	mongodb "github.com/pulsedash/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pulsedash/dashboard-api/internal/infrastructure/db/redis"
	"github.com/pulsedash/dashboard-api/internal/infrastructure/push"
	"github.com/pulsedash/dashboard-api/internal/pkg/config"
	"github.com/pulsedash/dashboard-api/pkg/logger"
)

// @title           PulseDash Dashboard API
// @version         1.0
// @description     Admin dashboard backend: users, notifications, revenue and a realtime push channel.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set, using an insecure default")
		cfg.JWTSecret = "dev-secret-change-me"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Mongo
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  10 * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// Repositories
	userRepo := mongodb.NewUserRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	revenueRepo := mongodb.NewRevenueRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	// Redis is optional: without it the push channel is still served, just
	// not mirrored across instances.
	var rdb *redisv9.Client
	if tmp, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:    cfg.Redis.Addr,
		DB:      cfg.Redis.DB,
		Timeout: 5 * time.Second,
	}); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without event relay")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close failed")
			}
		}()
	}

	// Push channel
	hub := push.NewHub(log)
	var publisher ports.Publisher = hub
	if rdb != nil {
		relay := push.NewRelay(hub, rdb, cfg.Redis.RelayChannel, log)
		relay.Start(ctx)
		publisher = relay
	}

	// Services
	tokens := service.NewTokenService(cfg.JWTSecret, 24*time.Hour)
	activities := service.NewActivityService(activityRepo, publisher)
	auth := service.NewAuthService(userRepo, activities, tokens, log)
	users := service.NewUserService(userRepo, activities, publisher, log)
	notifications := service.NewNotificationService(notificationRepo, publisher, log)
	stats := service.NewStatsService(userRepo, revenueRepo)
	seeder := service.NewSeedService(userRepo, notificationRepo, revenueRepo, activityRepo, log)

	if cfg.Simulator.Enabled {
		simulator := service.NewSimulator(userRepo, notifications, publisher, cfg.Simulator.Interval, log)
		simulator.Start(ctx)
	}

	// HTTP
	e := api.NewRouter(api.Deps{
		Logger:        log,
		Tokens:        tokens,
		Auth:          handler.NewAuthHandler(auth),
		Users:         handler.NewUserHandler(users),
		Notifications: handler.NewNotificationHandler(notifications),
		Stats:         handler.NewStatsHandler(stats, activities),
		Health:        handler.NewHealthHandler(db),
		Readiness:     handler.NewReadinessHandler(db, rdb),
		Seed:          handler.NewSeedHandler(seeder),
		WS:            handler.NewWSHandler(hub),
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
