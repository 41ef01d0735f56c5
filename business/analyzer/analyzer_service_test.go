package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkAgent/domain"
)

func TestAnalyzeFeatures_Battery(t *testing.T) {
	svc := NewService()

	reviews := []domain.Review{
		{Text: "Amazing battery life. Lasts all day!", Rating: 5},
		{Text: "The battery drains way too fast, terrible", Rating: 2},
	}

	results := svc.AnalyzeFeatures(reviews, []string{"battery"})
	require.Contains(t, results, "battery")

	battery := results["battery"]
	assert.Equal(t, 2, battery.MentionCount)
	assert.Equal(t, 3.5, battery.AverageRating)
	assert.Equal(t, 1, battery.PositiveMentions)
	assert.Equal(t, 1, battery.NegativeMentions)
	assert.Equal(t, 0.0, battery.SentimentScore)
	assert.Len(t, battery.SampleReviews, 2)
	assert.Equal(t, "amazing battery life", battery.SampleReviews[0])
}

func TestAnalyzeFeatures_ZeroMentions(t *testing.T) {
	svc := NewService()

	reviews := []domain.Review{
		{Text: "Amazing battery life", Rating: 5},
	}

	results := svc.AnalyzeFeatures(reviews, []string{"display"})
	require.Contains(t, results, "display")

	display := results["display"]
	assert.Equal(t, 0, display.MentionCount)
	assert.Equal(t, 0.0, display.AverageRating)
	assert.Equal(t, 0.0, display.SentimentScore)
	assert.Empty(t, display.SampleReviews)
	assert.NotNil(t, display.SampleReviews)
}

func TestAnalyzeFeatures_UnknownFeatureOmitted(t *testing.T) {
	svc := NewService()

	results := svc.AnalyzeFeatures([]domain.Review{{Text: "nice", Rating: 4}}, []string{"waterproofing"})
	assert.NotContains(t, results, "waterproofing")
}

func TestAnalyzeFeatures_SnippetsCapped(t *testing.T) {
	svc := NewService()

	reviews := []domain.Review{
		{Text: "Battery is great", Rating: 5},
		{Text: "Battery is fine", Rating: 4},
		{Text: "Battery is okay", Rating: 4},
		{Text: "Battery is weak", Rating: 3},
	}

	results := svc.AnalyzeFeatures(reviews, []string{"battery"})
	assert.Len(t, results["battery"].SampleReviews, 3)
}

func TestFeatureSummary(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "No reviews mention display.",
		svc.FeatureSummary(domain.FeatureAnalysis{}, "display"))

	assert.Equal(t, "Excellent camera performance with overwhelmingly positive reviews.",
		svc.FeatureSummary(domain.FeatureAnalysis{MentionCount: 4, AverageRating: 4.8, SentimentScore: 0.75}, "camera"))

	assert.Equal(t, "Below average battery with significant user complaints.",
		svc.FeatureSummary(domain.FeatureAnalysis{MentionCount: 3, AverageRating: 2.1, SentimentScore: -0.6}, "battery"))
}
