// Package export renders working drafts as downloadable files.
package export

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	toolerr "github.com/KirkDiggler/content-toolbox/internal/errors"
)

const dateLayout = "2006-01-02"

// Document is everything the text export shows
type Document struct {
	Params      content.GenerationParams
	Content     content.DraftContent
	GeneratedAt time.Time
}

// TextFileName is the download name for a text export
func TextFileName(platform content.Platform, date time.Time) string {
	return fmt.Sprintf("content-%s-%s.txt", platform, date.UTC().Format(dateLayout))
}

// ImageFileName is the download name for an exported image
func ImageFileName(date time.Time) string {
	return fmt.Sprintf("content-image-%s.png", date.UTC().Format(dateLayout))
}

// WriteText renders doc as plain text
func WriteText(w io.Writer, doc *Document) error {
	if doc == nil || doc.Content.IsEmpty() {
		return toolerr.Validation("no content to download")
	}

	image := "No image generated"
	if doc.Content.HasImage() {
		image = "Generated image included"
	}

	platform := doc.Content.Platform
	if platform == "" {
		platform = doc.Params.Platform
	}

	_, err := fmt.Fprintf(w, `
Platform: %s
Topic: %s
Tone: %s
Length: %s

TITLE:
%s

DESCRIPTION:
%s

HASHTAGS:
%s

IMAGE:
%s

Generated with Content Creator Toolbox on %s
`,
		platform,
		doc.Params.Topic,
		doc.Params.Tone,
		doc.Params.Length,
		doc.Content.Title,
		doc.Content.Description,
		strings.Join(doc.Content.Hashtags, " "),
		image,
		doc.GeneratedAt.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// DecodeDataURI splits a base64 data URI into its bytes and media type
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", toolerr.InvalidArgument("not a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", toolerr.InvalidArgument("data URI has no payload")
	}

	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, "", toolerr.InvalidArgumentf("unsupported data URI encoding %q", meta)
	}
	if mime == "" {
		mime = "text/plain"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", toolerr.WrapWithCode(err, toolerr.CodeInvalidArgument, "invalid base64 payload")
	}
	return data, mime, nil
}

// Files lists what SaveFiles wrote
type Files struct {
	TextPath  string
	ImagePath string // Empty when the draft has no image
}

// SaveFiles writes the text export, and the image when there is one, into
// dir using the standard download names.
func SaveFiles(dir string, doc *Document) (*Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}

	var b strings.Builder
	if err := WriteText(&b, doc); err != nil {
		return nil, err
	}

	files := &Files{TextPath: filepath.Join(dir, TextFileName(doc.Content.Platform, doc.GeneratedAt))}
	if err := os.WriteFile(files.TextPath, []byte(b.String()), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", files.TextPath, err)
	}

	if !doc.Content.HasImage() {
		return files, nil
	}

	data, _, err := DecodeDataURI(*doc.Content.Image)
	if err != nil {
		return files, toolerr.Wrap(err, "image was not exported")
	}
	files.ImagePath = filepath.Join(dir, ImageFileName(doc.GeneratedAt))
	if err := os.WriteFile(files.ImagePath, data, 0o644); err != nil {
		return files, fmt.Errorf("failed to write %s: %w", files.ImagePath, err)
	}
	return files, nil
}
