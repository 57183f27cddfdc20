// Command api runs the restaurant reservation HTTP service.
//
// @title        Reservation API
// @version      1.0
// @description  Restaurant reservation service: accounts, sessions and table bookings.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tablebook/reservation-system/docs"
	"github.com/tablebook/reservation-system/internal/api"
	"github.com/tablebook/reservation-system/internal/infrastructure/config"
	mongodb "github.com/tablebook/reservation-system/internal/infrastructure/db/mongo"
	redisdb "github.com/tablebook/reservation-system/internal/infrastructure/db/redis"
	"github.com/tablebook/reservation-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("SECRET environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("users index bootstrap failed")
	}
	if err := mongodb.NewBookingRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("bookings index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		os.Exit(1)
	}
}
