package recommender

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkAgent/business/analyzer"
	"sparkAgent/domain"
)

type stubStoreFinder struct {
	quotes []domain.StoreQuote
}

func (s *stubStoreFinder) NearbyStorePrices(productID int, onlinePrice float64, limit int) []domain.StoreQuote {
	return s.quotes
}

func recommenderFixture() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Gamma", Price: 400,
			Specifications: map[string]string{
				"main_camera": "108MP Triple Camera",
				"storage":     "256GB",
				"processor":   "Snapdragon 8 Gen 2",
				"ram":         "12GB",
				"display":     "6.7 inch AMOLED 120Hz",
				"battery":     "5000 mAh",
			},
			Reviews: []domain.Review{
				{Text: "Amazing camera quality", Rating: 5},
			},
		},
		{
			ID: 2, Name: "Delta", Price: 900,
			Specifications: map[string]string{
				"main_camera": "12MP Dual Camera",
				"battery":     "3600 mAh",
			},
		},
	}
}

func TestRecommend_InvalidPriority(t *testing.T) {
	svc := NewService(analyzer.NewService(), &stubStoreFinder{})

	_, err := svc.Recommend(context.Background(), recommenderFixture(), 1000, []string{"waterproofing"}, false)
	require.ErrorIs(t, err, ErrInvalidPriority)
}

func TestRecommend_EmptyWithinBudget(t *testing.T) {
	svc := NewService(analyzer.NewService(), &stubStoreFinder{})

	result, err := svc.Recommend(context.Background(), recommenderFixture(), 100, []string{"camera"}, false)
	require.NoError(t, err)

	assert.Empty(t, result.Recommendations)
	assert.Nil(t, result.BestChoice)
	assert.Equal(t, 100.0, result.Budget)
	assert.Equal(t, "No products found within budget of $100", result.Message)
}

func TestRecommend_Scoring(t *testing.T) {
	svc := NewService(analyzer.NewService(), &stubStoreFinder{})

	result, err := svc.Recommend(context.Background(), recommenderFixture(), 1000, []string{"camera", "battery"}, false)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 2)

	top := result.Recommendations[0]
	assert.Equal(t, "Gamma", top.Product)
	// 108MP tier 95 averaged with the 5-star camera rating
	assert.Equal(t, 97.5, top.Score["camera"])
	assert.Equal(t, 90.0, top.Score["battery"])
	assert.Equal(t, 93.8, top.OverallScore)
	assert.Empty(t, top.StorePrices)

	require.NotNil(t, result.BestChoice)
	assert.Equal(t, "Gamma", result.BestChoice.Product)
	assert.Contains(t, result.BestChoice.Reasons, "excellent camera")
	assert.Contains(t, result.BestChoice.Reasons, "excellent battery")
	assert.Contains(t, result.BestChoice.Reasons, "great value for money")
	assert.Nil(t, result.BestChoice.BestStoreDeal)
}

func TestRecommend_ValueScore(t *testing.T) {
	svc := NewService(analyzer.NewService(), &stubStoreFinder{})

	result, err := svc.Recommend(context.Background(), recommenderFixture(), 1000, []string{"battery"}, false)
	require.NoError(t, err)

	for _, rec := range result.Recommendations {
		expected := rec.OverallScore * (1 - (rec.OnlinePrice/1000)*0.3)
		assert.InDelta(t, expected, rec.ValueScore, 0.05, rec.Product)
	}
}

func TestRecommend_StoreDeal(t *testing.T) {
	stores := &stubStoreFinder{quotes: []domain.StoreQuote{
		{Store: "TechZone Express", StoreID: 1, Price: 390},
		{Store: "Digital Dreams", StoreID: 4, Price: 370},
	}}
	svc := NewService(analyzer.NewService(), stores)

	result, err := svc.Recommend(context.Background(), recommenderFixture(), 500, []string{"camera"}, true)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Len(t, result.Recommendations[0].StorePrices, 2)

	require.NotNil(t, result.BestChoice)
	require.NotNil(t, result.BestChoice.BestStoreDeal)
	assert.Equal(t, "Digital Dreams", result.BestChoice.BestStoreDeal.Store)
	assert.Equal(t, 30.0, result.BestChoice.Savings)
}

func TestRecommend_TopThree(t *testing.T) {
	svc := NewService(analyzer.NewService(), &stubStoreFinder{})

	products := recommenderFixture()
	products = append(products,
		domain.Product{ID: 3, Name: "Epsilon", Price: 300, Specifications: map[string]string{"battery": "4500 mAh"}},
		domain.Product{ID: 4, Name: "Zeta", Price: 200, Specifications: map[string]string{"battery": "4000 mAh"}},
	)

	result, err := svc.Recommend(context.Background(), products, 1000, []string{"battery"}, false)
	require.NoError(t, err)

	require.Len(t, result.Recommendations, 3)
	assert.GreaterOrEqual(t, result.Recommendations[0].OverallScore, result.Recommendations[1].OverallScore)
	assert.GreaterOrEqual(t, result.Recommendations[1].OverallScore, result.Recommendations[2].OverallScore)
}
