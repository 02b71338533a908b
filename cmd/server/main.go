package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard/internal/api"
	"jobboard/internal/app/service"
	"jobboard/internal/common/security"
	"jobboard/internal/domain/repository"
	"jobboard/internal/platform/cache"
	"jobboard/internal/platform/config"
	"jobboard/internal/platform/database"
	"jobboard/internal/platform/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Info().Msg("configuration loaded")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()
	log.Info().Msg("database connected")

	rdb, err := cache.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Msg("redis connected")

	tokens := security.NewTokenService(cfg.JWTKey, cfg.JWTExp)

	userRepo := repository.NewPgUserRepository(db)
	jobRepo := repository.NewPgJobRepository(db)

	listingCache := cache.NewListingCache(rdb, cfg.ListingCacheTTL)

	authService := service.NewAuthService(userRepo, tokens)
	jobService := service.NewJobService(jobRepo, listingCache)
	adminService := service.NewAdminService(userRepo)

	router := api.NewRouter(tokens, authService, jobService, adminService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.APIPort).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-stop // Wait for interrupt signal

	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server stopped gracefully")
}
