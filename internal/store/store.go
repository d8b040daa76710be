// Package store is the single-key, string-valued persistence boundary the
// history writes through. Backends have a finite capacity that callers never
// see; the only signal of exhaustion is a failed Write.
package store

//go:generate mockgen -destination=mock/mock.go -package=mockstore -source=store.go

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned (wrapped) by a backend that knows a write was
// rejected because it ran out of room.
var ErrQuotaExceeded = errors.New("store quota exceeded")

// Store reads, writes and removes whole serialized values under a key
type Store interface {
	// Read returns the value under key. found is false when the key is absent.
	Read(ctx context.Context, key string) (value string, found bool, err error)

	// Write replaces the value under key. A failed write leaves the previous
	// value in place.
	Write(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// IsQuotaExceeded reports whether err is a capacity rejection
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}
