package generation

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
)

var nonWord = regexp.MustCompile(`[^\w]`)

// topicTags turns each space separated word of the topic into a hashtag.
// Words with nothing left after stripping punctuation are skipped.
func topicTags(topic string, limit int) []string {
	var tags []string
	for _, word := range strings.Split(topic, " ") {
		clean := nonWord.ReplaceAllString(word, "")
		if clean == "" {
			continue
		}
		tags = append(tags, "#"+clean)
		if limit > 0 && len(tags) == limit {
			break
		}
	}
	return tags
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func (s *service) hashtags(p *content.GenerationParams) []string {
	topic := topicTags(p.Topic, 0)

	switch p.Platform {
	case content.PlatformInstagram:
		var tone []string
		switch p.Tone {
		case content.ToneHumorous:
			tone = []string{"#Funny", "#LOL", "#Humor"}
		case content.ToneInspirational:
			tone = []string{"#Inspiration", "#Motivated", "#Mindset"}
		case content.ToneCasual:
			tone = []string{"#CasualVibes", "#DailyPost", "#ShareTheMoment"}
		default:
			tone = []string{"#ContentCreation", "#Engagement"}
		}
		return concat(
			[]string{"#Instagram", "#IGDaily", "#InstaPost"},
			topic,
			tone,
			[]string{"#InstaLife", "#IGers", "#InstaDaily"},
		)
	case content.PlatformYouTube:
		return concat([]string{"#YouTube", "#YouTuber", "#VideoContent"}, topic, []string{"#Subscribe", "#YouTubeCommunity", "#Vlog"})
	case content.PlatformTikTok:
		return concat([]string{"#TikTok", "#FYP", "#ForYouPage"}, topic, []string{"#TikTokTrend", "#Viral", "#TikTokCreator"})
	case content.PlatformBlog:
		return concat([]string{"#Blog", "#Blogging", "#Article"}, topic, []string{"#WritersOfMedium", "#BloggingTips", "#ContentCreation"})
	case content.PlatformTwitter:
		return concat([]string{"#Twitter", "#TweetTips"}, topicTags(p.Topic, 2))
	case content.PlatformLinkedIn:
		return concat([]string{"#LinkedIn", "#ProfessionalDevelopment", "#Networking"}, topic, []string{"#CareerGrowth", "#Innovation"})
	case content.PlatformFacebook:
		return concat([]string{"#Facebook", "#Community", "#Sharing"}, topic, []string{"#Connection", "#SocialMedia"})
	default:
		return concat(
			[]string{"#ContentCreator", "#DigitalMarketing", "#" + string(p.Platform)},
			topic,
			[]string{"#CreateWithLove", "#ContentStrategy", "#OnlinePresence"},
		)
	}
}
