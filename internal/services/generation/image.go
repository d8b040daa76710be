package generation

//go:generate mockgen -destination=mock/mock_image_generator.go -package=mockgeneration -source=image.go

import (
	"context"
	"strings"

	"github.com/KirkDiggler/content-toolbox/internal/clients/stability"
	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
)

// ImageSize is the square edge requested for draft images
const ImageSize = 1024

// ImageGenerator turns a prompt into an image data URI.
// stability.Client satisfies it.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req *stability.TextToImageRequest) (string, error)
}

// ImageInput is the context an image prompt is built from
type ImageInput struct {
	Platform       content.Platform
	Topic          string
	Title          string
	AdditionalInfo string
}

var platformImageStyles = map[content.Platform]string{
	content.PlatformInstagram: "vibrant colors, lifestyle photography, square format, high quality, trending on Instagram",
	content.PlatformYouTube:   "youtube thumbnail, eye-catching, bold text, high contrast, professional look",
	content.PlatformTikTok:    "trendy, dynamic, vertical format, energetic, vibrant, young audience",
	content.PlatformBlog:      "professional, clean, informative, header image, blog style",
	content.PlatformTwitter:   "concise, impactful, twitter banner style, clean design",
	content.PlatformLinkedIn:  "professional, corporate, business appropriate, LinkedIn style",
	content.PlatformFacebook:  "engaging, shareable, community focused, facebook post style",
}

// BuildImagePrompt composes the platform styled prompt sent to the image API
func BuildImagePrompt(in *ImageInput) string {
	parts := []string{string(in.Platform) + " post about " + in.Topic}
	if in.Title != "" {
		parts = append(parts, in.Title)
	}
	if in.AdditionalInfo != "" {
		parts = append(parts, in.AdditionalInfo)
	}

	style, ok := platformImageStyles[in.Platform]
	if !ok {
		style = "high quality content"
	}
	parts = append(parts, style)

	return strings.Join(parts, ", ")
}
