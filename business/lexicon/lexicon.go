package lexicon

import "strings"

// Feature names in declaration order. Order matters: extraction and
// default fallbacks walk this slice, not a map.
var Features = []string{"battery", "camera", "performance", "display", "storage", "build"}

var featureKeywords = map[string][]string{
	"battery":     {"battery", "battery life", "charge", "charging", "power", "lasts", "drain", "mah"},
	"camera":      {"camera", "photo", "picture", "image", "selfie", "video", "lens", "megapixel", "mp"},
	"performance": {"fast", "speed", "lag", "smooth", "performance", "processor", "ram", "gaming"},
	"display":     {"screen", "display", "brightness", "colors", "oled", "refresh rate", "resolution"},
	"storage":     {"storage", "memory", "gb", "space", "capacity"},
	"build":       {"build", "quality", "premium", "durable", "design", "material", "glass", "aluminum"},
}

var positiveWords = []string{
	"excellent", "amazing", "great", "good", "love", "best", "awesome", "fantastic",
	"perfect", "impressive", "outstanding", "superb", "wonderful",
}

var negativeWords = []string{
	"poor", "bad", "terrible", "worst", "hate", "disappointing", "awful", "horrible",
	"mediocre", "slow", "issue", "problem", "fails",
}

// Known reports whether feature is part of the lexicon.
func Known(feature string) bool {
	_, ok := featureKeywords[feature]
	return ok
}

// Keywords returns the keyword list for a feature, nil for unknown ones.
func Keywords(feature string) []string {
	return featureKeywords[feature]
}

// Mentions reports whether text (already lowercased) mentions the
// feature, i.e. contains any of its keywords as a substring.
func Mentions(text, feature string) bool {
	for _, kw := range featureKeywords[feature] {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Sentiment classifies lowercased text as +1 positive, -1 negative or
// 0 neutral by counting sentiment words.
func Sentiment(text string) int {
	positive := 0
	for _, w := range positiveWords {
		if strings.Contains(text, w) {
			positive++
		}
	}
	negative := 0
	for _, w := range negativeWords {
		if strings.Contains(text, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return 1
	case negative > positive:
		return -1
	default:
		return 0
	}
}
