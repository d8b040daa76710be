package content

import "fmt"

// LimitViolation describes a field over its platform's advisory limit
type LimitViolation struct {
	Field string
	Limit int
	Got   int
}

func (v LimitViolation) String() string {
	return fmt.Sprintf("%s: %d exceeds limit of %d", v.Field, v.Got, v.Limit)
}

// CheckLimits reports which fields exceed the platform's display limits.
// Limits are advisory only; nothing in the history enforces them.
func CheckLimits(c DraftContent) []LimitViolation {
	cfg, ok := ConfigFor(c.Platform)
	if !ok {
		return nil
	}

	var violations []LimitViolation
	if n := len([]rune(c.Title)); n > cfg.MaxTitleLength {
		violations = append(violations, LimitViolation{Field: "title", Limit: cfg.MaxTitleLength, Got: n})
	}
	if cfg.MaxDescriptionLength != nil {
		if n := len([]rune(c.Description)); n > *cfg.MaxDescriptionLength {
			violations = append(violations, LimitViolation{Field: "description", Limit: *cfg.MaxDescriptionLength, Got: n})
		}
	}
	if cfg.MaxHashtags != nil && len(c.Hashtags) > *cfg.MaxHashtags {
		violations = append(violations, LimitViolation{Field: "hashtags", Limit: *cfg.MaxHashtags, Got: len(c.Hashtags)})
	}
	return violations
}
