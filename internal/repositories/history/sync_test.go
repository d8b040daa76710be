package history_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	"github.com/KirkDiggler/content-toolbox/internal/repositories/history"
	historymocks "github.com/KirkDiggler/content-toolbox/internal/repositories/history/mocks"
	"github.com/KirkDiggler/content-toolbox/internal/store"
	mockstore "github.com/KirkDiggler/content-toolbox/internal/store/mock"
	"github.com/KirkDiggler/content-toolbox/internal/testutils"
	mockuuid "github.com/KirkDiggler/content-toolbox/internal/uuid/mocks"
)

type SyncLadderTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	store        *mockstore.MockStore
	uuidGen      *mockuuid.MockGenerator
	timeProvider *historymocks.MockTimeProvider
	ctx          context.Context
	now          time.Time
}

func (s *SyncLadderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mockstore.NewMockStore(s.ctrl)
	s.uuidGen = mockuuid.NewMockGenerator(s.ctrl)
	s.timeProvider = historymocks.NewMockTimeProvider(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	s.timeProvider.EXPECT().Now().Return(s.now).AnyTimes()
}

func (s *SyncLadderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// seed makes the mock store return n previously saved drafts on rehydrate
func (s *SyncLadderTestSuite) seed(n int) history.Repository {
	var raw string
	found := n > 0
	if found {
		drafts := make([]*content.Draft, n)
		for i := range drafts {
			drafts[i] = testutils.CreateTestDraft(i)
		}
		data, err := json.Marshal(drafts)
		s.Require().NoError(err)
		raw = string(data)
	}

	s.store.EXPECT().Read(gomock.Any(), history.StorageKey).Return(raw, found, nil)

	repo, err := history.NewRepository(s.ctx, &history.Config{
		Store:         s.store,
		UUIDGenerator: s.uuidGen,
		TimeProvider:  s.timeProvider,
	})
	s.Require().NoError(err)
	s.Require().Equal(n, repo.Len())
	return repo
}

func decodeCount(value string) int {
	var drafts []*content.Draft
	if err := json.Unmarshal([]byte(value), &drafts); err != nil {
		return -1
	}
	return len(drafts)
}

func (s *SyncLadderTestSuite) TestInsert_FirstWriteSucceeds() {
	repo := s.seed(3)
	s.uuidGen.EXPECT().New().Return("new-id")

	var written string
	s.store.EXPECT().Write(gomock.Any(), history.StorageKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value string) error {
			written = value
			return nil
		})

	draft, outcome, err := repo.Insert(s.ctx, testutils.CreateTestContent(content.PlatformBlog, 99))
	s.Require().NoError(err)
	s.Equal(history.SyncPersisted, outcome)
	s.Equal("new-id", draft.ID)
	s.Equal(s.now, draft.CreatedAt)
	s.Equal(4, repo.Len())
	s.Equal(4, decodeCount(written))
}

func (s *SyncLadderTestSuite) TestInsert_DegradesOnQuota() {
	repo := s.seed(15)
	s.uuidGen.EXPECT().New().Return("new-id")

	var written string
	gomock.InOrder(
		s.store.EXPECT().Write(gomock.Any(), history.StorageKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value string) error {
				s.Equal(16, decodeCount(value))
				return fmt.Errorf("setItem: %w", store.ErrQuotaExceeded)
			}),
		s.store.EXPECT().Write(gomock.Any(), history.StorageKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value string) error {
				written = value
				return nil
			}),
	)

	draft, outcome, err := repo.Insert(s.ctx, testutils.CreateTestContent(content.PlatformBlog, 99))
	s.Require().NoError(err)
	s.Equal(history.SyncDegraded, outcome)
	s.True(outcome.IsWarning())
	s.Equal(history.ReducedHistoryItems, repo.Len())
	s.Equal(draft.ID, repo.List()[0].ID)

	var stored []*content.Draft
	s.Require().NoError(json.Unmarshal([]byte(written), &stored))
	s.Equal(repo.List(), stored)
}

func (s *SyncLadderTestSuite) TestInsert_ClearsWhenReducedWriteFails() {
	repo := s.seed(12)
	s.uuidGen.EXPECT().New().Return("new-id")

	gomock.InOrder(
		s.store.EXPECT().Write(gomock.Any(), history.StorageKey, gomock.Any()).
			Return(store.ErrQuotaExceeded),
		s.store.EXPECT().Write(gomock.Any(), history.StorageKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value string) error {
				s.Equal(history.ReducedHistoryItems, decodeCount(value))
				return store.ErrQuotaExceeded
			}),
		s.store.EXPECT().Remove(gomock.Any(), history.StorageKey).Return(nil),
	)

	draft, outcome, err := repo.Insert(s.ctx, testutils.CreateTestContent(content.PlatformBlog, 99))
	s.Require().NoError(err)
	s.NotNil(draft)
	s.Equal(history.SyncCleared, outcome)
	s.True(outcome.IsError())
	s.Zero(repo.Len())
}

func (s *SyncLadderTestSuite) TestInsert_ClearSurvivesRemoveFailure() {
	repo := s.seed(0)
	s.uuidGen.EXPECT().New().Return("new-id")

	s.store.EXPECT().Write(gomock.Any(), history.StorageKey, gomock.Any()).
		Return(errors.New("disk on fire")).Times(2)
	s.store.EXPECT().Remove(gomock.Any(), history.StorageKey).Return(errors.New("still on fire"))

	_, outcome, err := repo.Insert(s.ctx, testutils.CreateTestContent(content.PlatformBlog, 1))
	s.Require().NoError(err)
	s.Equal(history.SyncCleared, outcome)
	s.Zero(repo.Len())
}

func (s *SyncLadderTestSuite) TestInsert_EmptyContentTouchesNothing() {
	repo := s.seed(2)

	// No uuid, Write or Remove expectations: any call fails the test
	_, outcome, err := repo.Insert(s.ctx, content.DraftContent{Platform: content.PlatformBlog})
	s.Error(err)
	s.Equal(history.SyncNone, outcome)
	s.Equal(2, repo.Len())
}

func (s *SyncLadderTestSuite) TestRemove_AbsentIDTouchesNothing() {
	repo := s.seed(4)

	removed, outcome, err := repo.Remove(s.ctx, "nope")
	s.Require().NoError(err)
	s.False(removed)
	s.Equal(history.SyncNone, outcome)
	s.Equal(4, repo.Len())
}

func (s *SyncLadderTestSuite) TestRemove_Degrades() {
	repo := s.seed(20)

	gomock.InOrder(
		s.store.EXPECT().Write(gomock.Any(), history.StorageKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value string) error {
				s.Equal(19, decodeCount(value))
				return store.ErrQuotaExceeded
			}),
		s.store.EXPECT().Write(gomock.Any(), history.StorageKey, gomock.Any()).Return(nil),
	)

	removed, outcome, err := repo.Remove(s.ctx, "draft-3")
	s.Require().NoError(err)
	s.True(removed)
	s.Equal(history.SyncDegraded, outcome)
	s.Equal(history.ReducedHistoryItems, repo.Len())
	_, ok := repo.Get("draft-3")
	s.False(ok)
}

func (s *SyncLadderTestSuite) TestClearAll_RemovesKey() {
	repo := s.seed(5)
	s.store.EXPECT().Remove(gomock.Any(), history.StorageKey).Return(nil)

	s.Require().NoError(repo.ClearAll(s.ctx))
	s.Zero(repo.Len())
}

func (s *SyncLadderTestSuite) TestClearAll_ReportsStoreFailure() {
	repo := s.seed(5)
	s.store.EXPECT().Remove(gomock.Any(), history.StorageKey).Return(errors.New("connection refused"))

	err := repo.ClearAll(s.ctx)
	s.Error(err)
	s.Contains(err.Error(), "connection refused")
	s.Zero(repo.Len())
}

func TestSyncLadderTestSuite(t *testing.T) {
	suite.Run(t, new(SyncLadderTestSuite))
}
