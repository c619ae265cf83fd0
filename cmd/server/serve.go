package main

import (
	"alcyxob/fitvideo/internal/api"
	"alcyxob/fitvideo/internal/repository/mongo"
	"alcyxob/fitvideo/internal/service"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logCloser, err := bootstrap()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	log.Info().Str("version", version).Msg("Starting fitvideo server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	manager := mongo.NewConnectionManager(connectionOptions(cfg.Database))
	appDB, err := manager.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		log.Info().Msg("Disconnecting MongoDB...")
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := manager.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect MongoDB")
		}
	}()

	// Index creation runs in the background; the server does not wait for it.
	go func() {
		indexCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(indexCtx, appDB); err != nil {
			log.Error().Err(err).Msg("Index creation failed")
			return
		}
		log.Info().Msg("Index creation process completed")
	}()

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	sessionRepo := mongo.NewMongoUserSessionRepository(appDB)
	videoRepo := mongo.NewMongoVideoRepository(appDB)
	likeRepo := mongo.NewMongoUserLikeRepository(appDB)
	quoteRepo := mongo.NewMongoQuoteRepository(appDB)

	// --- Initialize Services ---
	services := api.Services{
		Users:    service.NewUserService(userRepo, sessionRepo, likeRepo, videoRepo),
		Sessions: service.NewSessionService(sessionRepo),
		Videos:   service.NewVideoService(videoRepo),
		Likes:    service.NewLikeService(likeRepo, videoRepo),
		Quotes:   service.NewQuoteService(quoteRepo),
	}

	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(services)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// --- Graceful Shutdown ---
	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("Server exiting")
	return nil
}
