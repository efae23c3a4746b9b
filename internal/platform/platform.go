package platform

import "strings"

// Spec holds the per-platform constraints used to shape generated copy.
type Spec struct {
	MaxLength int
	Style     string
	Format    string
}

const (
	Facebook  = "facebook"
	Instagram = "instagram"
	Twitter   = "twitter"
	LinkedIn  = "linkedin"
	TikTok    = "tiktok"
)

var specs = map[string]Spec{
	Facebook: {
		MaxLength: 2000,
		Style:     "friendly and engaging, use emojis",
		Format:    "short paragraphs with strong call-to-action",
	},
	Instagram: {
		MaxLength: 2200,
		Style:     "visual and inspiring, use emojis and hashtags",
		Format:    "short paragraphs + 10-15 relevant hashtags",
	},
	Twitter: {
		MaxLength: 280,
		Style:     "concise and impactful",
		Format:    "brief message with 2-3 hashtags",
	},
	LinkedIn: {
		MaxLength: 3000,
		Style:     "professional and educational",
		Format:    "long-form post with clear benefit points",
	},
	TikTok: {
		MaxLength: 2200,
		Style:     "energetic and trendy",
		Format:    "video script with strong hook and call-to-action",
	},
}

// Known returns the supported platforms in their canonical order.
func Known() []string {
	return []string{Facebook, Instagram, Twitter, LinkedIn, TikTok}
}

// Canonical lower-cases a caller-supplied platform name.
func Canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SpecFor resolves a platform name to its Spec. The lookup is
// case-insensitive and an unknown name falls back to the facebook spec
// rather than erroring; callers pass names straight from user input.
func SpecFor(name string) Spec {
	if s, ok := specs[Canonical(name)]; ok {
		return s
	}
	return specs[Facebook]
}
