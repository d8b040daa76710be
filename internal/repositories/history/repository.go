package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	toolerr "github.com/KirkDiggler/content-toolbox/internal/errors"
	"github.com/KirkDiggler/content-toolbox/internal/store"
	"github.com/KirkDiggler/content-toolbox/internal/uuid"
)

// Config holds the repository's collaborators
type Config struct {
	Store         store.Store     // Required
	UUIDGenerator uuid.Generator  // Optional, defaults to random UUIDs
	TimeProvider  TimeProvider    // Optional, defaults to the wall clock
	Logger        *zerolog.Logger // Optional, defaults to a no-op logger
}

// repository keeps the collection in memory and mirrors it into the store.
// Every public method holds mu for its whole run, so callers never see the
// collection and the persisted copy disagree once a method has returned.
type repository struct {
	mu            sync.Mutex
	store         store.Store
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	logger        zerolog.Logger

	drafts []*content.Draft
}

// NewRepository builds the repository and rehydrates it from the store.
// Unreadable history is treated as empty; only a failing store read is
// returned as an error.
func NewRepository(ctx context.Context, cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, toolerr.InvalidArgument("history config is required")
	}
	if cfg.Store == nil {
		return nil, toolerr.InvalidArgument("history store is required")
	}

	r := &repository{
		store:         cfg.Store,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
		logger:        zerolog.Nop(),
	}
	if r.uuidGenerator == nil {
		r.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if r.timeProvider == nil {
		r.timeProvider = &RealTimeProvider{}
	}
	if cfg.Logger != nil {
		r.logger = cfg.Logger.With().Str("component", "history").Logger()
	}

	if err := r.Rehydrate(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *repository) Rehydrate(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, found, err := r.store.Read(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if !found {
		r.drafts = nil
		return nil
	}

	var decoded []*content.Draft
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		r.logger.Error().Err(err).
			Str("key", StorageKey).
			Int("bytes", len(raw)).
			Msg("Failed to parse saved history")
		r.drafts = nil
		return nil
	}

	drafts := make([]*content.Draft, 0, len(decoded))
	for _, d := range decoded {
		if d != nil {
			drafts = append(drafts, d)
		}
	}
	if len(drafts) > MaxHistoryItems {
		r.logger.Warn().
			Int("stored", len(drafts)).
			Int("max", MaxHistoryItems).
			Msg("Saved history exceeds limit, truncating")
		drafts = drafts[:MaxHistoryItems]
	}

	r.drafts = drafts
	r.logger.Debug().Int("items", len(drafts)).Msg("History loaded")
	return nil
}

func (r *repository) Insert(ctx context.Context, c content.DraftContent) (*content.Draft, SyncOutcome, error) {
	if c.IsEmpty() {
		return nil, SyncNone, toolerr.Validation("no content to save")
	}
	if !c.Platform.IsValid() {
		return nil, SyncNone, toolerr.InvalidArgumentf("unknown platform %q", c.Platform).
			WithMeta("platform", string(c.Platform))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	draft := content.NewDraft(r.uuidGenerator.New(), r.timeProvider.Now().UTC(), c)

	drafts := make([]*content.Draft, 0, len(r.drafts)+1)
	drafts = append(drafts, draft)
	drafts = append(drafts, r.drafts...)
	if len(drafts) > MaxHistoryItems {
		drafts = drafts[:MaxHistoryItems]
	}
	r.drafts = drafts

	outcome := r.sync(ctx)
	return draft.Clone(), outcome, nil
}

func (r *repository) Remove(ctx context.Context, id string) (bool, SyncOutcome, error) {
	if id == "" {
		return false, SyncNone, toolerr.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false, SyncNone, nil
	}

	drafts := make([]*content.Draft, 0, len(r.drafts)-1)
	drafts = append(drafts, r.drafts[:idx]...)
	drafts = append(drafts, r.drafts[idx+1:]...)
	r.drafts = drafts

	return true, r.sync(ctx), nil
}

func (r *repository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drafts = nil
	if err := r.store.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to remove saved history: %w", err)
	}
	return nil
}

func (r *repository) List() []*content.Draft {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*content.Draft, len(r.drafts))
	for i, d := range r.drafts {
		out[i] = d.Clone()
	}
	return out
}

func (r *repository) Get(id string) (*content.Draft, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	return r.drafts[idx].Clone(), true
}

func (r *repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}

func (r *repository) indexOf(id string) int {
	for i, d := range r.drafts {
		if d.ID == id {
			return i
		}
	}
	return -1
}
