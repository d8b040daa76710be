package generation

//go:generate mockgen -destination=mock/mock_service.go -package=mockgeneration -source=service.go

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/content-toolbox/internal/clients/stability"
	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	toolerr "github.com/KirkDiggler/content-toolbox/internal/errors"
)

// Kind selects which parts of a draft to generate
type Kind string

const (
	KindTitle       Kind = "title"
	KindDescription Kind = "description"
	KindHashtags    Kind = "hashtags"
	KindAll         Kind = "all"
)

// ParseKind validates a generation kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindTitle, KindDescription, KindHashtags, KindAll:
		return k, nil
	default:
		return "", toolerr.InvalidArgumentf("unknown generation kind %q", s)
	}
}

// Service produces draft content from topic, tone and platform
type Service interface {
	// Generate fills the requested parts. KindAll also requests an image
	// when an ImageGenerator is configured.
	Generate(ctx context.Context, kind Kind, params *content.GenerationParams) (*Result, error)

	// GenerateImage returns nil when no image could be produced. Only a
	// missing topic is an error.
	GenerateImage(ctx context.Context, in *ImageInput) (*string, error)
}

// Result holds the generated parts. Parts that were not requested are
// left zero.
type Result struct {
	Title       string
	Description string
	Hashtags    []string
	Image       *string
}

// Apply copies the generated parts onto a working draft
func (r *Result) Apply(c *content.DraftContent) {
	if r.Title != "" {
		c.Title = r.Title
	}
	if r.Description != "" {
		c.Description = r.Description
	}
	if r.Hashtags != nil {
		c.Hashtags = append([]string(nil), r.Hashtags...)
	}
	if r.Image != nil {
		c.Image = content.StringPtr(*r.Image)
	}
}

type ServiceConfig struct {
	Picker         Picker           // Optional, defaults to a time seeded RandomPicker
	ImageGenerator ImageGenerator   // Optional, images are skipped without it
	Now            func() time.Time // Optional, defaults to time.Now
	Logger         *zerolog.Logger  // Optional
}

type service struct {
	picker         Picker
	imageGenerator ImageGenerator
	now            func() time.Time
	logger         zerolog.Logger
}

// NewService creates a new generation service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	svc := &service{
		picker:         cfg.Picker,
		imageGenerator: cfg.ImageGenerator,
		now:            cfg.Now,
		logger:         zerolog.Nop(),
	}
	if svc.picker == nil {
		svc.picker = NewRandomPicker(0)
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if cfg.Logger != nil {
		svc.logger = cfg.Logger.With().Str("component", "generation").Logger()
	}
	return svc
}

func withDefaults(p *content.GenerationParams) *content.GenerationParams {
	out := *p
	if out.Tone == "" {
		out.Tone = content.ToneProfessional
	}
	if out.Length == "" {
		out.Length = content.LengthMedium
	}
	return &out
}

func (s *service) Generate(ctx context.Context, kind Kind, params *content.GenerationParams) (*Result, error) {
	if params == nil {
		return nil, toolerr.InvalidArgument("generation params are required")
	}
	if strings.TrimSpace(params.Topic) == "" {
		return nil, toolerr.Validation("a topic is required before generating content")
	}
	if !params.Platform.IsValid() {
		return nil, toolerr.InvalidArgumentf("unknown platform %q", params.Platform)
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}

	p := withDefaults(params)
	if cfg, ok := content.ConfigFor(p.Platform); ok && !cfg.Supports(p.Tone) {
		s.logger.Warn().
			Str("platform", string(p.Platform)).
			Str("tone", string(p.Tone)).
			Msg("Tone is not one the platform usually uses")
	}
	result := &Result{}

	if kind != KindAll || s.imageGenerator == nil {
		s.fillText(kind, p, result)
		s.logger.Debug().Str("kind", string(kind)).Str("platform", string(p.Platform)).Msg("Generated content")
		return result, nil
	}

	// Text is produced locally; the image is the only slow part, so they
	// run side by side. An image failure never fails the text.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.fillText(kind, p, result)
		return nil
	})

	var image *string
	g.Go(func() error {
		img, err := s.GenerateImage(gctx, &ImageInput{
			Platform:       p.Platform,
			Topic:          p.Topic,
			AdditionalInfo: p.AdditionalInfo,
		})
		if err != nil {
			return err
		}
		image = img
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	result.Image = image

	s.logger.Debug().
		Str("kind", string(kind)).
		Str("platform", string(p.Platform)).
		Bool("image", image != nil).
		Msg("Generated content")
	return result, nil
}

func (s *service) fillText(kind Kind, p *content.GenerationParams, r *Result) {
	if kind == KindAll || kind == KindTitle {
		r.Title = s.title(p)
	}
	if kind == KindAll || kind == KindDescription {
		r.Description = s.description(p)
	}
	if kind == KindAll || kind == KindHashtags {
		r.Hashtags = s.hashtags(p)
	}
}

func (s *service) GenerateImage(ctx context.Context, in *ImageInput) (*string, error) {
	if in == nil || strings.TrimSpace(in.Topic) == "" {
		return nil, toolerr.Validation("a topic is required before generating an image")
	}
	if s.imageGenerator == nil {
		s.logger.Warn().Msg("No image generator configured, skipping image")
		return nil, nil
	}

	prompt := BuildImagePrompt(in)
	img, err := s.imageGenerator.GenerateImage(ctx, &stability.TextToImageRequest{
		Prompt: prompt,
		Width:  ImageSize,
		Height: ImageSize,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("platform", string(in.Platform)).Msg("Failed to generate image")
		return nil, nil
	}
	if img == "" {
		s.logger.Error().Str("platform", string(in.Platform)).Msg("Image generator returned nothing")
		return nil, nil
	}
	return &img, nil
}
