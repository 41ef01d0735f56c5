package rest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkAgent/business/analyzer"
	"sparkAgent/business/comparator"
	"sparkAgent/internal/repository/catalog"
)

func newComparisonTestHandler() *ComparisonHandler {
	return NewComparisonHandler(
		comparator.NewService(analyzer.NewService()),
		catalog.NewCatalogRepository(),
	)
}

func TestCompare_OK(t *testing.T) {
	handler := newComparisonTestHandler()

	rec := doJSON(t, handler.Compare, http.MethodPost, "/api/comparison/compare",
		`{"cart_items": ["1", "2"], "criteria": ["battery", "camera"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "product_1")
	assert.Contains(t, rec.Body.String(), "winner_by_criteria")
}

func TestCompare_TooFewResolvedProducts(t *testing.T) {
	handler := newComparisonTestHandler()

	rec := doJSON(t, handler.Compare, http.MethodPost, "/api/comparison/compare",
		`{"cart_items": ["1", "999"], "criteria": ["battery"]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "At least 2 products are required")
}

func TestCompare_MissingCriteria(t *testing.T) {
	handler := newComparisonTestHandler()

	rec := doJSON(t, handler.Compare, http.MethodPost, "/api/comparison/compare",
		`{"cart_items": ["1", "2"]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCriteria(t *testing.T) {
	handler := newComparisonTestHandler()

	rec := doJSON(t, handler.Criteria, http.MethodGet, "/api/comparison/compare/criteria", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Battery Life")
	assert.Contains(t, rec.Body.String(), "Build Quality")
}
