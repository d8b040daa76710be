package history

// SyncOutcome reports which tier of the persistence ladder a mutation ended on
type SyncOutcome int

const (
	// SyncNone means the mutation changed nothing, so nothing was written
	SyncNone SyncOutcome = iota

	// SyncPersisted means the full collection was written
	SyncPersisted

	// SyncDegraded means the full write was rejected and the collection was
	// shrunk to ReducedHistoryItems, which was then written
	SyncDegraded

	// SyncCleared means both writes were rejected; the key was removed and
	// the collection emptied
	SyncCleared
)

func (o SyncOutcome) String() string {
	switch o {
	case SyncNone:
		return "none"
	case SyncPersisted:
		return "persisted"
	case SyncDegraded:
		return "degraded"
	case SyncCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// IsWarning reports whether the outcome should be surfaced as a warning
func (o SyncOutcome) IsWarning() bool {
	return o == SyncDegraded
}

// IsError reports whether the outcome should be surfaced as an error
func (o SyncOutcome) IsError() bool {
	return o == SyncCleared
}
