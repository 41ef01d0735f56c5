package actions

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkAgent/internal/repository/catalog"
)

func newTestService() *Service {
	return NewService(catalog.NewCatalogRepository(), rand.New(rand.NewSource(1)))
}

func TestSearchProducts_SubstringMatch(t *testing.T) {
	svc := newTestService()

	results, err := svc.SearchProducts(context.Background(), "iphone")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, r := range results {
		assert.Contains(t, []string{"iPhone 13", "iPhone 15 Pro"}, r.Name)
		assert.Equal(t, 0.9, r.MatchScore)
	}
}

func TestSearchProducts_FuzzyFallback(t *testing.T) {
	svc := newTestService()

	results, err := svc.SearchProducts(context.Background(), "zzz nonsense")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.6, results[0].MatchScore)
}

func TestAddToCart(t *testing.T) {
	svc := newTestService()

	result := svc.AddToCart("3", 0)
	assert.True(t, result.Success)
	assert.Equal(t, "3", result.ProductID)
	assert.Equal(t, 1, result.Quantity, "non-positive quantity defaults to 1")
	assert.Equal(t, "Added 1 item(s) to your cart", result.Message)
	assert.GreaterOrEqual(t, result.CartTotalItems, 1)
	assert.LessOrEqual(t, result.CartTotalItems, 5)

	result = svc.AddToCart("3", 2)
	assert.Equal(t, 2, result.Quantity)
}

func TestRecentOrders(t *testing.T) {
	svc := newTestService()

	orders := svc.RecentOrders(2)
	require.Len(t, orders, 2)
	assert.Equal(t, "WM-2024-001", orders[0].OrderID)

	assert.Len(t, svc.RecentOrders(10), 3, "count past the history is capped")
	assert.Len(t, svc.RecentOrders(-1), 3)
}

func TestReviewSummary_KnownProduct(t *testing.T) {
	svc := newTestService()

	summary, err := svc.ReviewSummary(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, 4.5, summary.OverallRating)
	assert.Equal(t, 4, summary.TotalReviews)
	assert.Len(t, summary.KeyPoints, 3)
	assert.Contains(t, summary.Summary, "Common praises include")
	assert.Equal(t, "87% of customers would recommend this product", summary.Recommendation)
}

func TestReviewSummary_UnknownProduct(t *testing.T) {
	svc := newTestService()

	summary, err := svc.ReviewSummary(context.Background(), "unknown")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, summary.OverallRating, 4.0)
	assert.LessOrEqual(t, summary.OverallRating, 4.8)
	assert.GreaterOrEqual(t, summary.TotalReviews, 100)
	assert.LessOrEqual(t, summary.TotalReviews, 2000)
}
