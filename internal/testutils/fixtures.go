package testutils

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
)

// TestImage is a tiny but well formed PNG data URI
const TestImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// CreateTestContent creates non-empty draft content for the given platform
func CreateTestContent(platform content.Platform, n int) content.DraftContent {
	return content.DraftContent{
		Platform:    platform,
		Title:       fmt.Sprintf("Draft %d", n),
		Description: fmt.Sprintf("Description for draft %d", n),
		Hashtags:    []string{"#draft", fmt.Sprintf("#n%d", n)},
	}
}

// CreateTestDraft creates a saved draft with a stable ID and timestamp
func CreateTestDraft(n int) *content.Draft {
	return content.NewDraft(
		fmt.Sprintf("draft-%d", n),
		time.Date(2024, 1, 1, 0, 0, n, 0, time.UTC),
		CreateTestContent(content.PlatformInstagram, n),
	)
}
