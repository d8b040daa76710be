package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/content-toolbox/internal/repositories/history"
	"github.com/KirkDiggler/content-toolbox/internal/services/drafts"
	"github.com/KirkDiggler/content-toolbox/internal/services/generation"
	"github.com/KirkDiggler/content-toolbox/internal/store"
	"github.com/KirkDiggler/content-toolbox/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	DraftsService     drafts.Service
	GenerationService generation.Service

	// Store is the backend the history ended up on, which may be the
	// in-memory fallback
	Store store.Store
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Store          store.Store               // Optional, in-memory if nil
	ImageGenerator generation.ImageGenerator // Optional
	Notifier       drafts.Notifier           // Optional
	Picker         generation.Picker         // Optional
	UUIDGenerator  uuid.Generator            // Optional
	Logger         *zerolog.Logger           // Optional
}

// NewProvider creates a new service provider with all services initialized.
// When the configured store cannot be read the history falls back to an
// in-memory store for the rest of the process.
func NewProvider(ctx context.Context, cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	backend := cfg.Store
	if backend == nil {
		backend = store.NewMemoryStore(store.DefaultMemoryQuota)
	}

	repoConfig := &history.Config{
		Store:         backend,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        cfg.Logger,
	}
	repo, err := history.NewRepository(ctx, repoConfig)
	if err != nil {
		logger.Warn().Err(err).Msg("Falling back to in-memory history")

		backend = store.NewMemoryStore(store.DefaultMemoryQuota)
		repoConfig.Store = backend
		repo, err = history.NewRepository(ctx, repoConfig)
		if err != nil {
			return nil, err
		}
	}

	draftService := drafts.NewService(&drafts.ServiceConfig{
		Repository: repo,
		Notifier:   cfg.Notifier,
		Logger:     cfg.Logger,
	})

	genService := generation.NewService(&generation.ServiceConfig{
		Picker:         cfg.Picker,
		ImageGenerator: cfg.ImageGenerator,
		Logger:         cfg.Logger,
	})

	return &Provider{
		DraftsService:     draftService,
		GenerationService: genService,
		Store:             backend,
	}, nil
}
