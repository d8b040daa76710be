package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/content-toolbox/internal/clients/stability"
	"github.com/KirkDiggler/content-toolbox/internal/config"
	"github.com/KirkDiggler/content-toolbox/internal/logger"
	"github.com/KirkDiggler/content-toolbox/internal/services"
	"github.com/KirkDiggler/content-toolbox/internal/services/drafts"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 2
	}

	log := logger.New(cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeStore := openStore(ctx, cfg, &log)
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}()

	imageClient, err := stability.New(&stability.Config{
		HttpClient: &http.Client{Timeout: cfg.Stability.Timeout},
		APIKey:     cfg.Stability.APIKey,
		BaseURL:    cfg.Stability.BaseURL,
		Logger:     &log,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create image client")
		return 1
	}

	providerConfig := &services.ProviderConfig{
		Store:    backend,
		Notifier: drafts.NewLogNotifier(&log),
		Logger:   &log,
	}
	if cfg.Stability.APIKey != "" {
		providerConfig.ImageGenerator = imageClient
	} else {
		log.Debug().Msg("No STABILITY_API_KEY set, image generation disabled")
	}

	provider, err := services.NewProvider(ctx, providerConfig)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize services")
		return 1
	}

	a := &app{
		cfg:      cfg,
		logger:   log,
		provider: provider,
		out:      os.Stdout,
	}
	if err := a.dispatch(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
