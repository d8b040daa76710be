package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	toolerr "github.com/KirkDiggler/content-toolbox/internal/errors"
	"github.com/KirkDiggler/content-toolbox/internal/services/export"
	"github.com/KirkDiggler/content-toolbox/internal/testutils"
)

var exportDate = time.Date(2024, 2, 29, 15, 4, 5, 0, time.UTC)

func testDocument() *export.Document {
	return &export.Document{
		Params: content.GenerationParams{
			Platform: content.PlatformLinkedIn,
			Topic:    "remote work",
			Tone:     content.ToneProfessional,
			Length:   content.LengthShort,
		},
		Content: content.DraftContent{
			Platform:    content.PlatformLinkedIn,
			Title:       "The Future of remote work",
			Description: "Some thoughts",
			Hashtags:    []string{"#LinkedIn", "#remote"},
		},
		GeneratedAt: exportDate,
	}
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "content-youtube-2024-02-29.txt", export.TextFileName(content.PlatformYouTube, exportDate))
	assert.Equal(t, "content-image-2024-02-29.png", export.ImageFileName(exportDate))
}

func TestWriteText(t *testing.T) {
	var b strings.Builder
	require.NoError(t, export.WriteText(&b, testDocument()))

	out := b.String()
	assert.Contains(t, out, "Platform: linkedin\nTopic: remote work\nTone: professional\nLength: short\n")
	assert.Contains(t, out, "TITLE:\nThe Future of remote work\n")
	assert.Contains(t, out, "HASHTAGS:\n#LinkedIn #remote\n")
	assert.Contains(t, out, "IMAGE:\nNo image generated\n")
	assert.Contains(t, out, "Generated with Content Creator Toolbox on 2024-02-29")
}

func TestWriteText_Empty(t *testing.T) {
	var b strings.Builder
	err := export.WriteText(&b, &export.Document{})
	assert.True(t, toolerr.IsValidation(err))
	assert.Empty(t, b.String())
}

func TestDecodeDataURI(t *testing.T) {
	data, mime, err := export.DecodeDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, []byte("hello"), data)

	for _, bad := range []string{
		"https://example.com/x.png",
		"data:image/png;base64",
		"data:image/png,hello",
		"data:image/png;base64,!!!",
	} {
		_, _, err := export.DecodeDataURI(bad)
		assert.True(t, toolerr.IsInvalidArgument(err), bad)
	}
}

func TestSaveFiles(t *testing.T) {
	dir := t.TempDir()
	doc := testDocument()
	img := testutils.TestImage
	doc.Content.Image = &img

	files, err := export.SaveFiles(dir, doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "content-linkedin-2024-02-29.txt"), files.TextPath)
	assert.Equal(t, filepath.Join(dir, "content-image-2024-02-29.png"), files.ImagePath)

	text, err := os.ReadFile(files.TextPath)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Generated image included")

	png, err := os.ReadFile(files.ImagePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestSaveFiles_TextOnly(t *testing.T) {
	files, err := export.SaveFiles(t.TempDir(), testDocument())
	require.NoError(t, err)
	assert.Empty(t, files.ImagePath)
}
