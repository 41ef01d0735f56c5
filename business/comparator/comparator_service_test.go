package comparator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkAgent/business/analyzer"
	"sparkAgent/domain"
)

func comparisonFixture() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Alpha", Price: 1000,
			Specifications: map[string]string{"battery": "6000 mAh"},
			Reviews: []domain.Review{
				{Text: "Amazing battery life", Rating: 5},
			},
		},
		{
			ID: 2, Name: "Beta", Price: 900,
			Specifications: map[string]string{"battery": "4000 mAh"},
			Reviews: []domain.Review{
				{Text: "Good battery backup", Rating: 4},
			},
		},
	}
}

func TestCompare_RequiresTwoProducts(t *testing.T) {
	svc := NewService(analyzer.NewService())

	_, err := svc.Compare(context.Background(), comparisonFixture()[:1], []string{"battery"})
	require.ErrorIs(t, err, ErrInsufficientProducts)
}

func TestCompare_BatteryAndCamera(t *testing.T) {
	svc := NewService(analyzer.NewService())

	result, err := svc.Compare(context.Background(), comparisonFixture(), []string{"battery", "camera"})
	require.NoError(t, err)

	require.Contains(t, result.Comparison, "product_1")
	require.Contains(t, result.Comparison, "product_2")

	alpha := result.Comparison["product_1"]
	assert.Equal(t, "Alpha", alpha.Name)
	assert.Equal(t, "6000 mAh", alpha.Specs["battery"])
	assert.Equal(t, "Not specified", alpha.Specs["camera"])
	assert.Equal(t, 5.0, alpha.ReviewAnalysis["battery"].AverageRating)

	// rating 5 -> 100, +10 big battery bonus, clamped back to 100
	scores := result.Recommendation.Scores
	require.Contains(t, scores, "Alpha")
	assert.Equal(t, 100.0, scores["Alpha"].CriteriaScores["battery"])
	assert.Equal(t, 60.0, scores["Alpha"].CriteriaScores["camera"])
	assert.Equal(t, 80.0, scores["Alpha"].Total)

	assert.Equal(t, 80.0, scores["Beta"].CriteriaScores["battery"])
	assert.Equal(t, 70.0, scores["Beta"].Total)

	assert.Equal(t, "Alpha", result.Recommendation.RecommendedProduct)
	assert.Contains(t, result.Recommendation.Reason, "excels in battery")
	assert.Contains(t, result.Recommendation.Reason, "80.0/100")

	assert.Equal(t, "Alpha", result.WinnerByCriteria["battery"])
	assert.Equal(t, "Tie", result.WinnerByCriteria["camera"])

	assert.Contains(t, result.Summary, "Comparing Alpha vs Beta:")
	assert.Contains(t, result.Summary, "Alpha: 6000 mAh (User rating: 5/5)")
}

func TestCompare_TieKeepsFirstProduct(t *testing.T) {
	svc := NewService(analyzer.NewService())

	products := comparisonFixture()
	products[1].Reviews = []domain.Review{{Text: "Amazing battery life", Rating: 5}}
	products[1].Specifications["battery"] = "6000 mAh"

	result, err := svc.Compare(context.Background(), products, []string{"battery"})
	require.NoError(t, err)

	assert.Equal(t, "Alpha", result.Recommendation.RecommendedProduct)
	assert.Equal(t, "Alpha", result.WinnerByCriteria["battery"])
}

func TestCompare_Deterministic(t *testing.T) {
	svc := NewService(analyzer.NewService())

	first, err := svc.Compare(context.Background(), comparisonFixture(), []string{"battery"})
	require.NoError(t, err)
	second, err := svc.Compare(context.Background(), comparisonFixture(), []string{"battery"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
