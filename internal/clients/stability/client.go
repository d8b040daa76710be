package stability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	toolerr "github.com/KirkDiggler/content-toolbox/internal/errors"
)

const (
	DefaultBaseURL = "https://api.stability.ai"
	DefaultWidth   = 512
	DefaultHeight  = 512

	textToImagePath = "/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"
	dataURIPrefix   = "data:image/png;base64,"

	// Cap on how much of an error body ends up in the returned error
	maxErrorBody = 4096
)

// ErrNoImage is returned when the API answers successfully but without artifacts
var ErrNoImage = errors.New("stability: response contained no images")

// ErrMissingAPIKey is returned before any request when no key is configured
var ErrMissingAPIKey = errors.New("stability: API key is not set")

type Config struct {
	HttpClient *http.Client    // Optional, defaults to http.DefaultClient
	APIKey     string          // Required at call time
	BaseURL    string          // Optional, defaults to DefaultBaseURL
	Logger     *zerolog.Logger // Optional
}

type client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     zerolog.Logger
}

// New creates a text-to-image client. A missing API key is reported on the
// first GenerateImage call rather than here so the toolbox can still run
// text-only generation.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, toolerr.InvalidArgument("stability config is required")
	}

	c := &client{
		httpClient: cfg.HttpClient,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     zerolog.Nop(),
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if cfg.Logger != nil {
		c.logger = cfg.Logger.With().Str("component", "stability").Logger()
	}
	return c, nil
}

type textPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type textToImageBody struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	CfgScale    int          `json:"cfg_scale"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Samples     int          `json:"samples"`
	Steps       int          `json:"steps"`
}

type artifact struct {
	Base64       string `json:"base64"`
	Seed         int64  `json:"seed"`
	FinishReason string `json:"finishReason"`
}

type textToImageResponse struct {
	Artifacts []artifact `json:"artifacts"`
}

func (c *client) GenerateImage(ctx context.Context, req *TextToImageRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return "", toolerr.InvalidArgument("prompt is required")
	}

	width, height := req.Width, req.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	body, err := json.Marshal(&textToImageBody{
		TextPrompts: []textPrompt{{Text: req.Prompt, Weight: 1}},
		CfgScale:    7,
		Height:      height,
		Width:       width,
		Samples:     1,
		Steps:       30,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+textToImagePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug().Int("width", width).Int("height", height).Msg("Requesting image")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", toolerr.WrapWithCode(err, toolerr.CodeUnavailable, "stability request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(errBody)).
			Msg("Stability API error")
		return "", toolerr.Newf(toolerr.CodeUnavailable, "stability API error (%d): %s",
			resp.StatusCode, strings.TrimSpace(string(errBody))).
			WithMeta("status", resp.StatusCode)
	}

	var decoded textToImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode stability response: %w", err)
	}
	if len(decoded.Artifacts) == 0 || decoded.Artifacts[0].Base64 == "" {
		return "", ErrNoImage
	}

	return dataURIPrefix + decoded.Artifacts[0].Base64, nil
}
