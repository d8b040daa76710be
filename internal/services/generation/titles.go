package generation

import (
	"fmt"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
)

func choose(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

func (s *service) title(p *content.GenerationParams) string {
	topic := p.Topic
	tone := p.Tone

	var options []string
	switch p.Platform {
	case content.PlatformInstagram:
		options = []string{
			fmt.Sprintf("✨ %s that will Transform your Instagram Feed", topic),
			fmt.Sprintf("The %s %s Guide for the 'Gram", choose(tone == content.ToneHumorous, "Funniest", "Ultimate"), topic),
			fmt.Sprintf("%s %s Tips for Instagram Growth", choose(tone == content.ToneInspirational, "Inspiring", "Must-Know"), topic),
			fmt.Sprintf("How I Grew My Instagram Following with %s 📱", topic),
			fmt.Sprintf("%s %s 🔥", choose(tone == content.ToneCasual, "Hey Followers! Let's Talk About", "The Complete Guide to"), topic),
		}
	case content.PlatformYouTube:
		options = []string{
			fmt.Sprintf("%s | The Video You've Been Waiting For", topic),
			fmt.Sprintf("I Tried %s for 30 Days and THIS Happened [%s Results]", topic, choose(tone == content.ToneHumorous, "HILARIOUS", "SHOCKING")),
			fmt.Sprintf("%s %s", choose(tone == content.ToneEducational, "Learn Everything About", "You Won't Believe These Facts About"), topic),
			fmt.Sprintf("The TRUTH About %s That No One Is Talking About 😱", topic),
			fmt.Sprintf("%s Explained in %d Minutes", topic, 5*p.Length.LengthMultiplier()),
		}
	case content.PlatformTikTok:
		options = []string{
			fmt.Sprintf("POV: When you discover %s #fyp", topic),
			fmt.Sprintf("No one's talking about %s and it's a PROBLEM 🤯 #viral", topic),
			fmt.Sprintf("%s | %s", choose(tone == content.ToneHumorous, "Wait for it 😂", "This changed everything ✨"), topic),
			fmt.Sprintf("Day %d of %s #trendalert", between(s.picker, 1, 30), topic),
			fmt.Sprintf("The %s hack you NEED to know about! #lifehack", topic),
		}
	case content.PlatformBlog:
		options = []string{
			fmt.Sprintf("%s: A Comprehensive Guide for %d", topic, s.now().Year()),
			fmt.Sprintf("%s: %s", topic, choose(tone == content.ToneProfessional, "Expert Analysis and Insights", "Personal Reflections and Tips")),
			fmt.Sprintf("The %d Essential %s Strategies Every Professional Should Know", between(s.picker, 5, 10), topic),
			fmt.Sprintf("How %s is Transforming the Industry: Data-Driven Insights", topic),
			fmt.Sprintf("%s: Debunking Common Myths and Misconceptions", topic),
		}
	case content.PlatformTwitter:
		options = []string{
			fmt.Sprintf("Thread: Everything you need to know about %s in 10 tweets 🧵", topic),
			fmt.Sprintf("Hot take: %s is %s. Here's why...", topic, choose(tone == content.ToneHumorous, "overrated", "underrated")),
			fmt.Sprintf("I've been researching %s for %d years. Here's what I learned:", topic, between(s.picker, 1, 5)),
			fmt.Sprintf("%s explained in one tweet:", topic),
			fmt.Sprintf("Why is nobody talking about %s? 👀", topic),
		}
	case content.PlatformLinkedIn:
		options = []string{
			fmt.Sprintf("How I Leveraged %s to Increase Company Revenue by %d%%", topic, between(s.picker, 20, 50)),
			fmt.Sprintf("%s: The Skill That Transformed My Career Path", topic),
			fmt.Sprintf("%s %s in Today's Market", choose(tone == content.ToneProfessional, "Professional Insights:", "Reflecting on"), topic),
			fmt.Sprintf("The Future of %s in %d and Beyond", topic, s.now().Year()),
			fmt.Sprintf("I'm excited to share my thoughts on %s #LinkedInThoughts", topic),
		}
	case content.PlatformFacebook:
		options = []string{
			fmt.Sprintf("%s I've been exploring %s lately...", choose(tone == content.ToneCasual, "Hey friends!", "Announcement:"), topic),
			fmt.Sprintf("My journey with %s - a %s experience", topic, choose(tone == content.ToneInspirational, "life-changing", "personal")),
			fmt.Sprintf("%d things I wish I knew about %s sooner", between(s.picker, 3, 10), topic),
			fmt.Sprintf("Family update: Our experience with %s", topic),
			fmt.Sprintf("%s - Have you tried this yet? My honest review!", topic),
		}
	default:
		name := p.Platform.DisplayName()
		options = []string{
			fmt.Sprintf("The Ultimate %s Guide for %s", topic, name),
			fmt.Sprintf("%s %s Tips That Will Transform Your Content", choose(tone == content.ToneHumorous, "Hilarious", "Amazing"), topic),
			fmt.Sprintf("Why Every Creator Should Know About %s", topic),
			fmt.Sprintf("%s: The Secret Weapon for %s Success", topic, name),
			fmt.Sprintf("%s Approach to %s", choose(tone == content.ToneProfessional, "Professional", "Creative"), topic),
		}
	}

	return pick(s.picker, options)
}
