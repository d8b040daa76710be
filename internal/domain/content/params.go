package content

// GenerationParams drives template generation for a single draft
type GenerationParams struct {
	Platform       Platform
	Topic          string
	Tone           Tone
	Length         Length
	AdditionalInfo string
}

// LengthMultiplier scales length-dependent template parts such as video
// running time.
func (l Length) LengthMultiplier() int {
	switch l {
	case LengthShort:
		return 1
	case LengthLong:
		return 3
	default:
		return 2
	}
}
