// Package content holds the draft data model and the static platform table.
package content

import (
	"encoding/json"
	"time"
)

// Draft is one saved content package. Drafts are immutable once created;
// the history only ever adds or drops whole drafts.
type Draft struct {
	ID          string    `json:"id"`
	Platform    Platform  `json:"platform"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Hashtags    []string  `json:"hashtags"`
	Image       *string   `json:"image"` // data URI, nil when there is no image
	CreatedAt   time.Time `json:"createdAt"`
}

// DraftContent is the caller supplied part of a draft, before identity and
// creation time are assigned.
type DraftContent struct {
	Platform    Platform
	Title       string
	Description string
	Hashtags    []string
	Image       *string
}

// IsEmpty reports whether there is nothing worth saving
func (c DraftContent) IsEmpty() bool {
	return c.Title == "" &&
		c.Description == "" &&
		len(c.Hashtags) == 0 &&
		!c.HasImage()
}

// HasImage reports whether the content carries an image payload
func (c DraftContent) HasImage() bool {
	return c.Image != nil && *c.Image != ""
}

// HasImage reports whether the draft carries an image payload
func (d *Draft) HasImage() bool {
	return d.Image != nil && *d.Image != ""
}

// Content returns the caller supplied fields of the draft
func (d *Draft) Content() DraftContent {
	return DraftContent{
		Platform:    d.Platform,
		Title:       d.Title,
		Description: d.Description,
		Hashtags:    d.Hashtags,
		Image:       d.Image,
	}
}

// MarshalJSON keeps hashtags an array even when the draft has none
func (d Draft) MarshalJSON() ([]byte, error) {
	type alias Draft
	a := alias(d)
	if a.Hashtags == nil {
		a.Hashtags = []string{}
	}
	return json.Marshal(a)
}

// NewDraft builds a draft from content. Hashtags and image are copied so
// later changes to the caller's slices cannot reach the stored draft.
func NewDraft(id string, createdAt time.Time, c DraftContent) *Draft {
	hashtags := make([]string, len(c.Hashtags))
	copy(hashtags, c.Hashtags)

	var image *string
	if c.Image != nil && *c.Image != "" {
		img := *c.Image
		image = &img
	}

	return &Draft{
		ID:          id,
		Platform:    c.Platform,
		Title:       c.Title,
		Description: c.Description,
		Hashtags:    hashtags,
		Image:       image,
		CreatedAt:   createdAt,
	}
}

// StringPtr is a small helper for optional image payloads
func StringPtr(s string) *string {
	return &s
}

// Clone returns a deep copy that shares no slices with d
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	return NewDraft(d.ID, d.CreatedAt, d.Content())
}
