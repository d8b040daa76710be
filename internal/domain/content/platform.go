package content

import (
	"fmt"
	"strings"
)

// Platform is one of the fixed publishing targets a draft is written for
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformBlog      Platform = "blog"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
)

// Tone is the voice generated content is written in
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneHumorous      Tone = "humorous"
	ToneInspirational Tone = "inspirational"
	ToneEducational   Tone = "educational"
)

// Length controls how much text the generator produces
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// PlatformConfig is static display metadata and advisory limits for a platform.
// A nil limit means the platform imposes none.
type PlatformConfig struct {
	Name                 string
	Icon                 string
	Color                string
	MaxTitleLength       int
	MaxDescriptionLength *int
	MaxHashtags          *int
	SupportedTones       []Tone
}

func limit(n int) *int {
	return &n
}

// platformOrder is the order platforms are offered to the user
var platformOrder = []Platform{
	PlatformInstagram,
	PlatformYouTube,
	PlatformBlog,
	PlatformTikTok,
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformFacebook,
}

var platformConfigs = map[Platform]PlatformConfig{
	PlatformInstagram: {
		Name:                 "Instagram",
		Icon:                 "instagram",
		Color:                "#E1306C",
		MaxTitleLength:       100,
		MaxDescriptionLength: limit(2200),
		MaxHashtags:          limit(30),
		SupportedTones:       []Tone{ToneCasual, ToneInspirational, ToneHumorous},
	},
	PlatformYouTube: {
		Name:                 "YouTube",
		Icon:                 "youtube",
		Color:                "#FF0000",
		MaxTitleLength:       100,
		MaxDescriptionLength: limit(5000),
		SupportedTones:       []Tone{ToneProfessional, ToneEducational, ToneCasual, ToneHumorous},
	},
	PlatformBlog: {
		Name:           "Blog",
		Icon:           "blog",
		Color:          "#FF5722",
		MaxTitleLength: 70,
		MaxHashtags:    limit(10),
		SupportedTones: []Tone{ToneProfessional, ToneEducational, ToneInspirational},
	},
	PlatformTikTok: {
		Name:                 "TikTok",
		Icon:                 "tiktok",
		Color:                "#000000",
		MaxTitleLength:       100,
		MaxDescriptionLength: limit(2200),
		MaxHashtags:          limit(20),
		SupportedTones:       []Tone{ToneCasual, ToneHumorous},
	},
	PlatformTwitter: {
		Name:                 "Twitter",
		Icon:                 "twitter",
		Color:                "#1DA1F2",
		MaxTitleLength:       280,
		MaxDescriptionLength: limit(280),
		MaxHashtags:          limit(5),
		SupportedTones:       []Tone{ToneCasual, ToneProfessional, ToneHumorous},
	},
	PlatformLinkedIn: {
		Name:                 "LinkedIn",
		Icon:                 "linkedin",
		Color:                "#0077B5",
		MaxTitleLength:       150,
		MaxDescriptionLength: limit(3000),
		MaxHashtags:          limit(5),
		SupportedTones:       []Tone{ToneProfessional, ToneEducational},
	},
	PlatformFacebook: {
		Name:                 "Facebook",
		Icon:                 "facebook",
		Color:                "#1877F2",
		MaxTitleLength:       125,
		MaxDescriptionLength: limit(5000),
		MaxHashtags:          limit(10),
		SupportedTones:       []Tone{ToneCasual, ToneProfessional, ToneInspirational},
	},
}

var toneLabels = map[Tone]string{
	ToneProfessional:  "Professional",
	ToneCasual:        "Casual",
	ToneHumorous:      "Humorous",
	ToneInspirational: "Inspirational",
	ToneEducational:   "Educational",
}

var lengthLabels = map[Length]string{
	LengthShort:  "Short",
	LengthMedium: "Medium",
	LengthLong:   "Long",
}

// Platforms returns every supported platform in display order
func Platforms() []Platform {
	out := make([]Platform, len(platformOrder))
	copy(out, platformOrder)
	return out
}

// ParsePlatform converts user input into a Platform
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := platformConfigs[p]; !ok {
		return "", fmt.Errorf("unknown platform %q", s)
	}
	return p, nil
}

// IsValid reports whether p is one of the supported platforms
func (p Platform) IsValid() bool {
	_, ok := platformConfigs[p]
	return ok
}

// String returns the platform identifier
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the platform name with its first letter capitalised,
// falling back to the raw identifier for unknown values.
func (p Platform) DisplayName() string {
	if cfg, ok := platformConfigs[p]; ok {
		return cfg.Name
	}
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// ConfigFor returns the static configuration for p
func ConfigFor(p Platform) (PlatformConfig, bool) {
	cfg, ok := platformConfigs[p]
	return cfg, ok
}

// Supports reports whether the platform lists the tone as a good fit
func (c PlatformConfig) Supports(t Tone) bool {
	for _, supported := range c.SupportedTones {
		if supported == t {
			return true
		}
	}
	return false
}

// ParseTone converts user input into a Tone
func ParseTone(s string) (Tone, error) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := toneLabels[t]; !ok {
		return "", fmt.Errorf("unknown tone %q", s)
	}
	return t, nil
}

// Label returns the human readable tone name
func (t Tone) Label() string {
	return toneLabels[t]
}

// ParseLength converts user input into a Length
func ParseLength(s string) (Length, error) {
	l := Length(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := lengthLabels[l]; !ok {
		return "", fmt.Errorf("unknown length %q", s)
	}
	return l, nil
}

// Label returns the human readable length name
func (l Length) Label() string {
	return lengthLabels[l]
}
