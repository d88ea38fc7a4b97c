package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plantops/manufacturing-ops/internal/api"
	"github.com/plantops/manufacturing-ops/internal/core/service"
	mongodb "github.com/plantops/manufacturing-ops/internal/infrastructure/db/mongo"
	redisdb "github.com/plantops/manufacturing-ops/internal/infrastructure/db/redis"
	"github.com/plantops/manufacturing-ops/internal/infrastructure/queue"
	"github.com/plantops/manufacturing-ops/internal/pkg/config"
	"github.com/plantops/manufacturing-ops/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	productionRepo := mongodb.NewProductionRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	referenceRepo := mongodb.NewReferenceRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := productionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("production index creation failed")
	}
	if err := referenceRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("reference index creation failed")
	}

	// --- Services ---
	tokens, err := service.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Algorithm,
		time.Duration(cfg.JWT.ExpireMinutes)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("token issuer configuration invalid")
	}

	notificationService := service.NewNotificationService(notificationRepo, log)

	dispatcher := queue.NewDispatcher(0, notificationService, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	productionService := service.NewProductionService(productionRepo, dispatcher, log)
	reportService := service.NewReportService(productionRepo)
	referenceService := service.NewReferenceService(referenceRepo, redisdb.NewReferenceCache(rdb), log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		DB:            db,
		Redis:         rdb,
		Tokens:        tokens,
		Users:         userRepo,
		Auth:          authService,
		UserService:   userService,
		Production:    productionService,
		Reports:       reportService,
		Notifications: notificationService,
		Reference:     referenceService,
		Log:           log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
