package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
)

// sync mirrors r.drafts into the store. Callers hold r.mu.
//
// The ladder has exactly two write attempts: the capped collection, then the
// first ReducedHistoryItems. If both are rejected the key is removed and the
// collection emptied. Capacity is never estimated up front; only the store's
// answer decides the tier.
func (r *repository) sync(ctx context.Context) SyncOutcome {
	limited := r.drafts[:min(len(r.drafts), MaxHistoryItems)]

	err := r.write(ctx, limited)
	if err == nil {
		r.drafts = limited
		return SyncPersisted
	}

	r.logger.Warn().Err(err).
		Int("items", len(limited)).
		Msg("Storage quota exceeded, reducing history size")

	reduced := r.drafts[:min(len(r.drafts), ReducedHistoryItems)]
	err = r.write(ctx, reduced)
	if err == nil {
		r.drafts = reduced
		r.logger.Warn().
			Int("items", len(reduced)).
			Msg("History size was reduced due to storage limitations")
		return SyncDegraded
	}

	r.logger.Error().Err(err).Msg("Still could not save history, clearing instead")
	if rmErr := r.store.Remove(ctx, StorageKey); rmErr != nil {
		r.logger.Error().Err(rmErr).Msg("Failed to remove saved history")
	}
	r.drafts = nil
	return SyncCleared
}

func (r *repository) write(ctx context.Context, drafts []*content.Draft) error {
	if drafts == nil {
		drafts = []*content.Draft{}
	}

	data, err := json.Marshal(drafts)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	return r.store.Write(ctx, StorageKey, string(data))
}
