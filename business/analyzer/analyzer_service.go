package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"sparkAgent/business/lexicon"
	"sparkAgent/domain"
)

const maxSampleReviews = 3

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Service mines product reviews for feature-level insight. It is a
// pure computation over its inputs and never returns an error:
// features outside the lexicon are simply omitted from the result.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// AnalyzeFeatures computes a FeatureAnalysis for every known feature
// in features. A feature with zero mentions still gets an entry, with
// all counters at zero; the key is never omitted.
func (s *Service) AnalyzeFeatures(reviews []domain.Review, features []string) map[string]domain.FeatureAnalysis {
	results := make(map[string]domain.FeatureAnalysis, len(features))

	for _, feature := range features {
		if !lexicon.Known(feature) {
			continue
		}

		var mentions []string
		ratingSum := 0
		positive := 0
		negative := 0

		for _, review := range reviews {
			text := strings.ToLower(review.Text)
			if !lexicon.Mentions(text, feature) {
				continue
			}

			mentions = append(mentions, text)
			ratingSum += review.Rating

			switch lexicon.Sentiment(text) {
			case 1:
				positive++
			case -1:
				negative++
			}
		}

		if len(mentions) == 0 {
			results[feature] = domain.FeatureAnalysis{SampleReviews: []string{}}
			continue
		}

		results[feature] = domain.FeatureAnalysis{
			AverageRating:    round2(float64(ratingSum) / float64(len(mentions))),
			MentionCount:     len(mentions),
			PositiveMentions: positive,
			NegativeMentions: negative,
			SentimentScore:   round2(float64(positive-negative) / float64(len(mentions))),
			SampleReviews:    sampleSnippets(mentions, feature),
		}
	}

	return results
}

// sampleSnippets pulls one sentence per mentioning review: the first
// sentence that contains a feature keyword. At most three snippets,
// taken from the first three mentioning reviews.
func sampleSnippets(mentions []string, feature string) []string {
	samples := []string{}

	limit := len(mentions)
	if limit > maxSampleReviews {
		limit = maxSampleReviews
	}

	for _, text := range mentions[:limit] {
		for _, sentence := range sentenceSplit.Split(text, -1) {
			if lexicon.Mentions(strings.ToLower(sentence), feature) {
				samples = append(samples, strings.TrimSpace(sentence))
				break
			}
		}
	}

	if len(samples) > maxSampleReviews {
		samples = samples[:maxSampleReviews]
	}

	return samples
}

// FeatureSummary renders a one-line verdict for a single analyzed feature.
func (s *Service) FeatureSummary(analysis domain.FeatureAnalysis, feature string) string {
	if analysis.MentionCount == 0 {
		return fmt.Sprintf("No reviews mention %s.", feature)
	}

	rating := analysis.AverageRating
	sentiment := analysis.SentimentScore

	switch {
	case rating >= 4.5 && sentiment > 0.5:
		return fmt.Sprintf("Excellent %s performance with overwhelmingly positive reviews.", feature)
	case rating >= 4.0 && sentiment > 0:
		return fmt.Sprintf("Very good %s with mostly positive feedback.", feature)
	case rating >= 3.5:
		return fmt.Sprintf("Good %s with mixed reviews.", feature)
	case rating >= 3.0:
		return fmt.Sprintf("Average %s performance with some concerns.", feature)
	default:
		return fmt.Sprintf("Below average %s with significant user complaints.", feature)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
