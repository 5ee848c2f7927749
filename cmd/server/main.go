package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avick-dev/bizmarket-service/internal/config"
	"github.com/avick-dev/bizmarket-service/internal/services"
	transport "github.com/avick-dev/bizmarket-service/internal/transport/http"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run server")
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	config.SetupLogging(cfg.LogLevel)

	log.Info().
		Str("app", cfg.AppName).
		Str("spanner_database", cfg.SpannerDatabase).
		Str("http_port", cfg.HTTPPort).
		Msg("Starting marketplace service")

	serviceOpts, err := services.NewServiceOptions(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	router := transport.NewRouter(
		serviceOpts.TokenManager,
		serviceOpts.AuthHandler,
		serviceOpts.ListingHandler,
		serviceOpts.OfferHandler,
		serviceOpts.EventsHandler,
	)

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	return nil
}
