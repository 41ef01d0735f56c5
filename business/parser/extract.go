package parser

import (
	"regexp"
	"strconv"
	"strings"

	"sparkAgent/business/lexicon"
)

var firstNumber = regexp.MustCompile(`\$?\d+k?`)

var defaultCriteria = []string{"performance", "camera", "battery"}

// Priority keyword table, walked in this order when truncating.
var priorityOrder = []string{"camera", "storage", "gaming", "battery", "display"}

var priorityKeywords = map[string][]string{
	"camera":  {"camera", "photo", "photography", "picture", "selfie"},
	"storage": {"storage", "memory", "space", "gb"},
	"gaming":  {"gaming", "game", "games", "gamer"},
	"battery": {"battery", "charge", "power", "backup"},
	"display": {"display", "screen", "amoled"},
}

const maxPriorities = 3

// ExtractFeatures maps free text onto lexicon features for comparison
// criteria. Non-empty text that names no feature gets the default trio;
// empty text yields no criteria.
func ExtractFeatures(text string) []string {
	features := []string{}
	for _, feature := range lexicon.Features {
		if lexicon.Mentions(text, feature) {
			features = append(features, feature)
		}
	}

	if len(features) == 0 && text != "" {
		return append([]string{}, defaultCriteria...)
	}

	return features
}

// ExtractPriorities maps requirement text onto recommendation
// priorities, capped at three in table order.
func ExtractPriorities(text string) []string {
	priorities := []string{}
	for _, priority := range priorityOrder {
		for _, kw := range priorityKeywords[priority] {
			if strings.Contains(text, kw) {
				priorities = append(priorities, priority)
				break
			}
		}
	}

	if len(priorities) == 0 {
		return append([]string{}, defaultCriteria...)
	}

	if len(priorities) > maxPriorities {
		priorities = priorities[:maxPriorities]
	}

	return priorities
}

// ParseBudget reads a budget figure out of text like "$500", "30k" or
// "25000". A trailing k multiplies by 1000; unparsable input is 0.
func ParseBudget(text string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, "$", ""))

	multiplier := 1.0
	if strings.HasSuffix(strings.ToLower(cleaned), "k") {
		multiplier = 1000.0
		cleaned = cleaned[:len(cleaned)-1]
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return value * multiplier
}

func looksNumeric(text string) bool {
	cleaned := strings.ReplaceAll(text, "$", "")
	cleaned = strings.TrimSuffix(strings.ToLower(cleaned), "k")
	if cleaned == "" {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
