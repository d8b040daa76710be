package generation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
)

// twitterLimit is the character budget for a single tweet
const twitterLimit = 280

var whitespace = regexp.MustCompile(`\s+`)

// squash removes all whitespace so a phrase can be used as a hashtag
func squash(s string) string {
	return whitespace.ReplaceAllString(s, "")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (s *service) description(p *content.GenerationParams) string {
	topic := p.Topic
	tone := p.Tone
	extra := p.AdditionalInfo

	var b strings.Builder
	switch p.Platform {
	case content.PlatformInstagram:
		fmt.Fprintf(&b, "✨ %s %s! ", choose(tone == content.ToneInspirational, "Feeling inspired about", "Excited to share"), topic)
		if extra != "" {
			b.WriteString(extra + " ")
		}
		switch tone {
		case content.ToneCasual:
			fmt.Fprintf(&b, "\n\nJust wanted to drop this %s content on your feed today! What do you guys think? Drop a 💖 if you're loving this content!\n\n", topic)
		case content.ToneHumorous:
			fmt.Fprintf(&b, "\n\nWhen they said I couldn't make %s interesting, I took that personally 😂 Plot twist: I did! Check this out!\n\n", topic)
		case content.ToneInspirational:
			fmt.Fprintf(&b, "\n\nEvery day is a new opportunity to explore %s. Remember, your journey is unique and beautiful in its own way ✨\n\n", topic)
		}
		b.WriteString("\n\nDouble tap if this resonated with you! 👇 Follow for more content like this!")

	case content.PlatformYouTube:
		fmt.Fprintf(&b, "📺 %s %s in this %s video!", choose(tone == content.ToneEducational, "Learn all about", "Discover"), topic, p.Length)
		if extra != "" {
			b.WriteString("\n\n" + extra)
		}
		fmt.Fprintf(&b, "\n\nIn this video, we're diving deep into %s and showing you exactly how to make the most of it. ", topic)
		switch tone {
		case content.ToneEducational:
			fmt.Fprintf(&b, "\n\nCHAPTERS:\n00:00 - Introduction\n01:23 - Background on %s\n04:56 - Main concepts\n08:30 - Practical applications\n12:45 - Summary and takeaways", topic)
		case content.ToneHumorous:
			fmt.Fprintf(&b, "\n\nWARNING: Side effects of this video may include uncontrollable laughter, mind-blowing revelations about %s, and an irresistible urge to hit that subscribe button!", topic)
		}
		fmt.Fprintf(&b, "\n\n👇 LINKS & RESOURCES 👇\nWebsite: https://example.com\nInstagram: @example\n\n#%s #YouTube #Content", squash(topic))

	case content.PlatformTikTok:
		// TikTok captions stay short whatever the requested length
		fmt.Fprintf(&b, "%s %s#fyp #foryoupage ", topic, choose(tone == content.ToneHumorous, "😂 ", "✨ "))
		if extra != "" {
			fmt.Fprintf(&b, "#%s ", squash(extra))
		}
		fmt.Fprintf(&b, "#%s #viral #trending", squash(topic))

	case content.PlatformBlog:
		fmt.Fprintf(&b, "%s of %s", choose(tone == content.ToneProfessional, "An in-depth analysis", "A comprehensive guide"), topic)
		if extra != "" {
			fmt.Fprintf(&b, ", with focus on %s.", extra)
		}
		fmt.Fprintf(&b, "\n\n## Introduction\n\nIn today's rapidly evolving landscape, understanding %s has become increasingly important. This article explores the key aspects, challenges, and opportunities related to %s.", topic, topic)
		fmt.Fprintf(&b, "\n\n## Key Insights\n\n- %s is transforming how we approach content creation\n- Understanding the fundamentals is essential for success\n- Implementing strategic approaches can yield significant results", topic)
		fmt.Fprintf(&b, "\n\n## Conclusion\n\n%s represents a significant opportunity for those willing to invest time and resources into mastering it. By following the guidelines outlined in this article, you'll be well-positioned to leverage %s effectively.", topic, topic)

	case content.PlatformTwitter:
		fmt.Fprintf(&b, "%s is %s important in today's world.\n\n", topic, choose(tone == content.ToneHumorous, "hilariously", "incredibly"))
		if extra != "" {
			fmt.Fprintf(&b, "Especially when it comes to %s.\n\n", extra)
		}
		b.WriteString("What are your thoughts? Reply below!")
		return truncateRunes(b.String(), twitterLimit)

	case content.PlatformLinkedIn:
		fmt.Fprintf(&b, "I'm excited to share my insights on %s.\n\n", topic)
		switch tone {
		case content.ToneProfessional:
			fmt.Fprintf(&b, "Throughout my career, I've observed that %s plays a crucial role in driving business outcomes and professional development. ", topic)
			if extra != "" {
				fmt.Fprintf(&b, "Particularly in the area of %s, where strategic implementation can lead to significant advantages.", extra)
			}
			b.WriteString("\n\n")
			fmt.Fprintf(&b, "Key takeaways:\n• Implementing %s can increase productivity by up to 30%%\n• Teams that prioritize %s report higher satisfaction\n• Future trends indicate %s will become even more vital\n\n", topic, topic, topic)
		case content.ToneEducational:
			fmt.Fprintf(&b, "Here are 3 things you should know about %s:\n\n1. The fundamentals are often misunderstood\n2. Practical application requires strategic thinking\n3. Continuous learning is essential for mastery\n\n", topic)
		}
		fmt.Fprintf(&b, "I'd love to hear your experiences with %s. Comment below or message me to continue the conversation.\n\n#%s #ProfessionalDevelopment #Innovation", topic, squash(topic))

	case content.PlatformFacebook:
		fmt.Fprintf(&b, "%s My thoughts on %s.\n\n", choose(tone == content.ToneCasual, "Hey everyone!", "I wanted to share something important today:"), topic)
		if extra != "" {
			fmt.Fprintf(&b, "I've been particularly interested in how %s relates to this.\n\n", extra)
		}
		switch tone {
		case content.ToneCasual:
			b.WriteString("Has anyone else been exploring this lately? Would love to hear your experiences!\n\n")
		case content.ToneInspirational:
			fmt.Fprintf(&b, "Remember that every journey begins with a single step. %s might seem challenging at first, but the rewards are worth it.\n\n", topic)
		}
		b.WriteString("Feel free to share this post if you found it helpful! ❤️")

	default:
		fmt.Fprintf(&b, "This is a %s %s description about %s for %s.", tone, p.Length, topic, p.Platform.DisplayName())
		if extra != "" {
			fmt.Fprintf(&b, " Including information about: %s.", extra)
		}
		b.WriteString(" This content is designed to engage your audience and drive interaction. Use it to build your brand and establish authority in your niche.")
		b.WriteString(strings.Repeat(" The more you engage, the more your audience will grow.", p.Length.LengthMultiplier()))
	}

	return b.String()
}
