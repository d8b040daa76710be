package content_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
)

func TestDraftContent_IsEmpty(t *testing.T) {
	t.Run("all fields empty", func(t *testing.T) {
		c := content.DraftContent{Platform: content.PlatformBlog, Hashtags: []string{}}
		assert.True(t, c.IsEmpty())
	})

	t.Run("empty image string counts as no image", func(t *testing.T) {
		c := content.DraftContent{Image: content.StringPtr("")}
		assert.True(t, c.IsEmpty())
	})

	t.Run("any single field makes it non-empty", func(t *testing.T) {
		assert.False(t, content.DraftContent{Title: "t"}.IsEmpty())
		assert.False(t, content.DraftContent{Description: "d"}.IsEmpty())
		assert.False(t, content.DraftContent{Hashtags: []string{"#a"}}.IsEmpty())
		assert.False(t, content.DraftContent{Image: content.StringPtr("data:image/png;base64,AA==")}.IsEmpty())
	})
}

func TestNewDraft_CopiesInput(t *testing.T) {
	tags := []string{"#one", "#two"}
	img := "data:image/png;base64,AA=="
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	d := content.NewDraft("id-1", createdAt, content.DraftContent{
		Platform: content.PlatformTikTok,
		Title:    "title",
		Hashtags: tags,
		Image:    &img,
	})

	tags[0] = "#changed"
	img = "changed"

	assert.Equal(t, "id-1", d.ID)
	assert.Equal(t, []string{"#one", "#two"}, d.Hashtags)
	require.NotNil(t, d.Image)
	assert.Equal(t, "data:image/png;base64,AA==", *d.Image)
	assert.Equal(t, createdAt, d.CreatedAt)
	assert.True(t, d.HasImage())
}

func TestDraft_JSONShape(t *testing.T) {
	d := content.NewDraft("abc", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), content.DraftContent{
		Platform: content.PlatformTwitter,
		Title:    "hello",
	})

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "abc", raw["id"])
	assert.Equal(t, "twitter", raw["platform"])
	assert.Equal(t, "hello", raw["title"])
	assert.Equal(t, "", raw["description"])
	assert.Equal(t, []any{}, raw["hashtags"])
	assert.Nil(t, raw["image"])
	assert.Contains(t, raw, "image")
	assert.Equal(t, "2024-01-02T03:04:05Z", raw["createdAt"])
}

func TestDraft_DecodesBrowserTimestamps(t *testing.T) {
	blob := `{"id":"x","platform":"blog","title":"t","description":"","hashtags":["#a"],"image":null,"createdAt":"2024-03-09T10:11:12.345Z"}`

	var d content.Draft
	require.NoError(t, json.Unmarshal([]byte(blob), &d))

	assert.Equal(t, content.PlatformBlog, d.Platform)
	assert.Nil(t, d.Image)
	assert.Equal(t, time.Date(2024, 3, 9, 10, 11, 12, 345_000_000, time.UTC), d.CreatedAt)
}
