// Package history owns the bounded, newest-first collection of saved drafts
// and mirrors it into a store.Store under a single key.
package history

//go:generate mockgen -destination=mock/mock.go -package=mockhistory -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
)

const (
	// StorageKey is the single key the collection is persisted under
	StorageKey = "contentHistory"

	// MaxHistoryItems caps the collection after every mutation
	MaxHistoryItems = 20

	// ReducedHistoryItems is what survives when a full write is rejected
	ReducedHistoryItems = max(5, MaxHistoryItems/2)
)

// Repository defines the history operations
type Repository interface {
	// Rehydrate replaces the in-memory collection with the persisted one
	Rehydrate(ctx context.Context) error

	// Insert saves new content as the newest draft
	Insert(ctx context.Context, c content.DraftContent) (*content.Draft, SyncOutcome, error)

	// Remove deletes the draft with the given id, if present
	Remove(ctx context.Context, id string) (bool, SyncOutcome, error)

	// ClearAll empties the collection and deletes the persisted key
	ClearAll(ctx context.Context) error

	// List returns a copy of the collection, newest first
	List() []*content.Draft

	// Get returns the draft with the given id
	Get(id string) (*content.Draft, bool)

	// Len returns the number of drafts held
	Len() int
}
