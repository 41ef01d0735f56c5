package parser

import (
	"regexp"
	"strconv"
	"strings"

	"sparkAgent/domain"
)

const defaultOrderCount = 10

// rule binds an intent to its ordered pattern list. Rules are
// evaluated in declaration order and the first matching pattern wins,
// so overlapping patterns resolve to whichever intent is tried first.
type rule struct {
	intent   domain.Intent
	patterns []*regexp.Regexp
}

// Service turns free-text commands into a ParsedCommand. It never
// fails: input that matches nothing degrades to IntentUnknown.
type Service struct {
	rules []rule
}

func NewService() *Service {
	return &Service{
		rules: []rule{
			{domain.IntentSearch, compile(
				`^(?:get|show|find|search|look for)\s+(?:me\s+)?(.+?)(?:\s+for me)?$`,
				`^(?:i want|i need|looking for)\s+(.+)$`,
				`^(.+?)\s+(?:please|pls)?$`,
			)},
			{domain.IntentAddToCart, compile(
				`^add (?:it|this|that) to (?:my\s+)?cart`,
				`^(?:put|place) (?:it|this|that) in (?:my\s+)?cart`,
				`^cart (?:it|this|that)`,
				`^buy (?:it|this|that)`,
			)},
			{domain.IntentSummarize, compile(
				`^(?:summarize|summary of)\s+(?:the\s+)?reviews?`,
				`^what do (?:the\s+)?reviews? say`,
				`^tell me about (?:the\s+)?reviews?`,
				`^(?:summarize|summary|describe)\s+(?:this|the)\s+(?:product|item)`,
			)},
			{domain.IntentShowOrder, compile(
				`^(?:show|get|display)\s+(?:me\s+)?(?:my\s+)?(?:last|recent)?\s*(\d*)\s*orders?`,
				`^(?:my\s+)?order history`,
				`^what did i (?:order|buy)`,
				`^(?:take me to|show)\s+(?:my\s+)?orders?`,
			)},
			{domain.IntentNavigate, compile(
				`^(?:go to|take me to|navigate to)\s+(.+)`,
				`^(?:open|show)\s+(.+)\s+page`,
			)},
			{domain.IntentCompare, compile(
				`^compare\s+(?:the\s+)?(?:phones?|products?|items?|everything)\s+in\s+(?:my\s+)?cart(?:\s+(?:for|on|by|based on)\s+(.+))?$`,
				`^(?:which|what)(?:\s+one)?\s+is\s+better(?:\s+(?:for|in|at)\s+(.+))?$`,
				`^compare\s+(.+?)\s+(?:with|and|vs\.?|versus)\s+(.+?)(?:\s+(?:for|on)\s+(.+))?$`,
			)},
			{domain.IntentRecommend, compile(
				`^(?:recommend|suggest)\s+(?:me\s+)?(?:a\s+|an\s+|some\s+)?(.+?)\s+(?:under|below|within|around)\s+(?:rs\.?\s*|inr\s*|₹\s*)?(\$?\d+k?)$`,
				`^(?:best|good|top)\s+(.+?)\s+(?:under|below|within)\s+(?:rs\.?\s*|inr\s*|₹\s*)?(\$?\d+k?)$`,
				`^what(?:'s| is) the best\s+(.+?)\s+(?:under|for)\s+(?:rs\.?\s*|inr\s*|₹\s*)?(\$?\d+k?)$`,
				`^i have\s+(?:rs\.?\s*|inr\s*|₹\s*)?(\$?\d+k?)\s+(?:budget\s+)?(?:for|to spend on|to buy)\s+(.+)$`,
			)},
		},
	}
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// Parse classifies a raw command. Matching is case-insensitive against
// the trimmed, lowercased input; captures therefore come out lowercased.
func (s *Service) Parse(command string) domain.ParsedCommand {
	lowered := strings.ToLower(strings.TrimSpace(command))

	for _, r := range s.rules {
		for _, pattern := range r.patterns {
			if m := pattern.FindStringSubmatch(lowered); m != nil {
				return s.extract(r.intent, m)
			}
		}
	}

	return s.infer(lowered)
}

func (s *Service) extract(intent domain.Intent, match []string) domain.ParsedCommand {
	groups := match[1:]

	switch intent {
	case domain.IntentSearch:
		query := strings.TrimSpace(groups[0])
		return domain.ParsedCommand{
			Intent: intent,
			Params: domain.SearchParams{Query: query, OriginalQuery: query},
		}

	case domain.IntentShowOrder:
		count := defaultOrderCount
		if len(groups) > 0 && groups[0] != "" {
			if n, err := strconv.Atoi(groups[0]); err == nil {
				count = n
			}
		}
		return domain.ParsedCommand{Intent: intent, Params: domain.OrdersParams{Count: count}}

	case domain.IntentNavigate:
		return domain.ParsedCommand{
			Intent: intent,
			Params: domain.NavigateParams{Target: strings.TrimSpace(groups[0])},
		}

	case domain.IntentCompare:
		return domain.ParsedCommand{Intent: intent, Params: s.extractCompare(groups)}

	case domain.IntentRecommend:
		return domain.ParsedCommand{Intent: intent, Params: s.extractRecommend(groups[0], groups[1])}

	default:
		// add_to_cart and summarize carry no parameters
		return domain.ParsedCommand{Intent: intent}
	}
}

// extractCompare reads a compare match: the last capture group is
// criteria text; two leading product captures name the products to
// compare, otherwise the comparison targets the cart.
func (s *Service) extractCompare(groups []string) domain.CompareParams {
	params := domain.CompareParams{
		Criteria: ExtractFeatures(strings.TrimSpace(groups[len(groups)-1])),
	}

	if len(groups) >= 3 && groups[0] != "" && groups[1] != "" {
		params.Product1 = strings.TrimSpace(groups[0])
		params.Product2 = strings.TrimSpace(groups[1])
	} else {
		params.UseCart = true
	}

	return params
}

// extractRecommend splits a two-capture recommend match into budget
// and requirement text. The numeric-looking group is the budget; when
// both or neither qualify, the first group is taken as the budget.
func (s *Service) extractRecommend(first, second string) domain.RecommendParams {
	budgetText, requirement := first, second
	if !looksNumeric(first) && looksNumeric(second) {
		budgetText, requirement = second, first
	}

	return domain.RecommendParams{
		Budget:      ParseBudget(budgetText),
		Requirement: requirement,
		Priorities:  ExtractPriorities(requirement),
	}
}

// infer is the keyword fallback for commands no pattern matched.
func (s *Service) infer(command string) domain.ParsedCommand {
	if containsAny(command, "compare", "vs", "versus", "better", "difference") {
		return domain.ParsedCommand{
			Intent: domain.IntentCompare,
			Params: domain.CompareParams{UseCart: true, Criteria: ExtractFeatures(command)},
		}
	}

	if containsAny(command, "recommend", "suggest", "best", "budget") && firstNumber.MatchString(command) {
		return domain.ParsedCommand{
			Intent: domain.IntentRecommend,
			Params: domain.RecommendParams{
				Budget:      ParseBudget(firstNumber.FindString(command)),
				Requirement: command,
				Priorities:  ExtractPriorities(command),
			},
		}
	}

	productKeywords := []string{
		"phone", "laptop", "tv", "iphone", "samsung",
		"electronics", "groceries", "clothing", "shoes", "toys",
	}
	for _, keyword := range productKeywords {
		if strings.Contains(command, keyword) {
			return domain.ParsedCommand{
				Intent: domain.IntentSearch,
				Params: domain.SearchParams{Query: command, OriginalQuery: command},
			}
		}
	}

	if containsAny(command, "cart", "buy", "purchase", "checkout") {
		return domain.ParsedCommand{Intent: domain.IntentAddToCart}
	}

	if containsAny(command, "review", "rating", "summary", "describe") {
		return domain.ParsedCommand{Intent: domain.IntentSummarize}
	}

	if containsAny(command, "order", "history", "bought", "purchased") {
		return domain.ParsedCommand{
			Intent: domain.IntentShowOrder,
			Params: domain.OrdersParams{Count: defaultOrderCount},
		}
	}

	// Short commands tend to be bare product queries.
	if len(strings.Fields(command)) <= 3 {
		return domain.ParsedCommand{
			Intent: domain.IntentSearch,
			Params: domain.SearchParams{Query: command, OriginalQuery: command},
		}
	}

	return domain.ParsedCommand{
		Intent: domain.IntentUnknown,
		Params: domain.UnknownParams{OriginalCommand: command},
	}
}

func containsAny(command string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(command, w) {
			return true
		}
	}
	return false
}
