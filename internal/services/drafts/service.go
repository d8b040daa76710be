package drafts

//go:generate mockgen -destination=mock/mock_service.go -package=mockdrafts -source=service.go

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	toolerr "github.com/KirkDiggler/content-toolbox/internal/errors"
	"github.com/KirkDiggler/content-toolbox/internal/repositories/history"
)

// Messages reported to the Notifier
const (
	MsgSaved        = "Content saved to history"
	MsgReduced      = "History size was reduced due to storage limitations"
	MsgCleared      = "Content history was cleared due to storage limitations"
	MsgNothingSaved = "No content to save"
	MsgDeleted      = "Content deleted from history"
	MsgNotFound     = "Content was not in history"
	MsgAllCleared   = "All history cleared"
)

// Service is the lifecycle facade over the draft history
type Service interface {
	// Save validates and records a draft, newest first
	Save(ctx context.Context, input *SaveDraftInput) (*SaveDraftResult, error)

	// Delete removes a draft by ID. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) (*DeleteDraftResult, error)

	// ClearAll drops every saved draft
	ClearAll(ctx context.Context) error

	// List returns saved drafts, newest first
	List(ctx context.Context) ([]*content.Draft, error)

	// Get returns one saved draft
	Get(ctx context.Context, id string) (*content.Draft, error)
}

// SaveDraftInput is the working draft to record
type SaveDraftInput struct {
	Content content.DraftContent

	// CheckLimits reports platform limit violations as warnings. They never
	// block the save.
	CheckLimits bool
}

// SaveDraftResult reports what was stored
type SaveDraftResult struct {
	Draft      *content.Draft
	Outcome    history.SyncOutcome
	Violations []content.LimitViolation
}

// DeleteDraftResult reports whether anything was removed
type DeleteDraftResult struct {
	Removed bool
	Outcome history.SyncOutcome
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository history.Repository // Required
	Notifier   Notifier           // Optional, messages are dropped if nil
	Logger     *zerolog.Logger    // Optional
}

type service struct {
	repository history.Repository
	notifier   Notifier
	logger     zerolog.Logger
}

// NewService creates a new drafts service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		notifier:   cfg.Notifier,
		logger:     zerolog.Nop(),
	}
	if svc.notifier == nil {
		svc.notifier = nopNotifier{}
	}
	if cfg.Logger != nil {
		svc.logger = cfg.Logger.With().Str("component", "drafts").Logger()
	}
	return svc
}

func (s *service) Save(ctx context.Context, input *SaveDraftInput) (*SaveDraftResult, error) {
	if input == nil {
		return nil, toolerr.InvalidArgument("input cannot be nil")
	}

	if input.Content.IsEmpty() {
		s.notifier.Notify(LevelError, MsgNothingSaved)
		return nil, toolerr.Validation(MsgNothingSaved)
	}
	if !input.Content.Platform.IsValid() {
		return nil, toolerr.Validationf("unknown platform %q", input.Content.Platform).
			WithMeta("platform", string(input.Content.Platform))
	}

	var violations []content.LimitViolation
	if input.CheckLimits {
		violations = content.CheckLimits(input.Content)
		for _, v := range violations {
			s.notifier.Notify(LevelWarning, v.String())
		}
	}

	draft, outcome, err := s.repository.Insert(ctx, input.Content)
	if err != nil {
		return nil, toolerr.Wrap(err, "failed to save draft")
	}

	s.logger.Debug().
		Str("draft_id", draft.ID).
		Str("platform", string(draft.Platform)).
		Stringer("outcome", outcome).
		Msg("Draft saved")

	s.reportSave(outcome)

	return &SaveDraftResult{
		Draft:      draft,
		Outcome:    outcome,
		Violations: violations,
	}, nil
}

func (s *service) reportSave(outcome history.SyncOutcome) {
	switch outcome {
	case history.SyncCleared:
		s.notifier.Notify(LevelError, MsgCleared)
	case history.SyncDegraded:
		s.notifier.Notify(LevelSuccess, MsgSaved)
		s.notifier.Notify(LevelWarning, MsgReduced)
	default:
		s.notifier.Notify(LevelSuccess, MsgSaved)
	}
}

func (s *service) Delete(ctx context.Context, id string) (*DeleteDraftResult, error) {
	if id == "" {
		return nil, toolerr.InvalidArgument("draft ID is required")
	}

	removed, outcome, err := s.repository.Remove(ctx, id)
	if err != nil {
		return nil, toolerr.Wrapf(err, "failed to delete draft %s", id)
	}

	switch {
	case !removed:
		s.notifier.Notify(LevelInfo, MsgNotFound)
	case outcome == history.SyncCleared:
		s.notifier.Notify(LevelError, MsgCleared)
	case outcome == history.SyncDegraded:
		s.notifier.Notify(LevelSuccess, MsgDeleted)
		s.notifier.Notify(LevelWarning, MsgReduced)
	default:
		s.notifier.Notify(LevelSuccess, MsgDeleted)
	}

	return &DeleteDraftResult{Removed: removed, Outcome: outcome}, nil
}

func (s *service) ClearAll(ctx context.Context) error {
	if err := s.repository.ClearAll(ctx); err != nil {
		return toolerr.Wrap(err, "failed to clear history")
	}
	s.notifier.Notify(LevelSuccess, MsgAllCleared)
	return nil
}

func (s *service) List(_ context.Context) ([]*content.Draft, error) {
	return s.repository.List(), nil
}

func (s *service) Get(_ context.Context, id string) (*content.Draft, error) {
	if id == "" {
		return nil, toolerr.InvalidArgument("draft ID is required")
	}

	draft, ok := s.repository.Get(id)
	if !ok {
		return nil, toolerr.NotFoundf("draft %s not found", id).WithMeta("draft_id", id)
	}
	return draft, nil
}
