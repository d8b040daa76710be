package stability

//go:generate mockgen -destination=mock/mock_client.go -package=mockstability -source=interface.go

import (
	"context"
)

// Client generates images from text prompts
type Client interface {
	// GenerateImage returns the first generated image as a PNG data URI
	GenerateImage(ctx context.Context, req *TextToImageRequest) (string, error)
}

// TextToImageRequest describes one prompt. Zero dimensions use the API
// defaults of 512x512.
type TextToImageRequest struct {
	Prompt string
	Width  int
	Height int
}
