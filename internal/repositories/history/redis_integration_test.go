//go:build integration

package history_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	"github.com/KirkDiggler/content-toolbox/internal/repositories/history"
	"github.com/KirkDiggler/content-toolbox/internal/store"
	"github.com/KirkDiggler/content-toolbox/internal/testutils"
)

func TestRedisHistory_PersistsAcrossRepositories(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	ctx := context.Background()
	s := store.NewRedisStore(&store.RedisConfig{Client: client, Prefix: "it:"})

	repo := newTestRepo(t, s)
	for i := 0; i < 22; i++ {
		_, outcome, err := repo.Insert(ctx, testutils.CreateTestContent(content.PlatformYouTube, i))
		require.NoError(t, err)
		assert.Equal(t, history.SyncPersisted, outcome)
	}

	reloaded := newTestRepo(t, s)
	assert.Equal(t, repo.List(), reloaded.List())
	assert.Equal(t, history.MaxHistoryItems, reloaded.Len())

	require.NoError(t, reloaded.ClearAll(ctx))
	exists, err := client.Exists(ctx, "it:"+history.StorageKey).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestRedisHistory_MaxMemoryKeepsMirrorConsistent(t *testing.T) {
	client := testutils.CreateTestRedisClient(t, &testutils.TestRedisConfig{MaxMemory: "3mb"})
	ctx := context.Background()
	s := store.NewRedisStore(&store.RedisConfig{Client: client})
	repo := newTestRepo(t, s)

	img := "data:image/png;base64," + strings.Repeat("Q", 200*1024)
	for i := 0; i < 20; i++ {
		c := testutils.CreateTestContent(content.PlatformInstagram, i)
		c.Image = &img

		_, outcome, err := repo.Insert(ctx, c)
		require.NoError(t, err)
		t.Logf("insert %d: %s (%d items)", i, outcome, repo.Len())

		stored, found := storedDrafts(t, s)
		if found {
			require.Equal(t, repo.List(), stored)
		} else {
			require.Zero(t, repo.Len())
		}
	}
}
