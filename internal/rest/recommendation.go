package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"sparkAgent/business/recommender"
	"sparkAgent/domain"
	"sparkAgent/pkg/logger"
	"sparkAgent/pkg/metrics"
)

type (
	RecommendationHandler struct {
		validate    *validator.Validate
		recommender RecommenderService
		catalog     CatalogService
		timeout     time.Duration
	}

	RecommenderService interface {
		Recommend(ctx context.Context, products []domain.Product, budget float64, priorities []string, includeStores bool) (*domain.RecommendationResult, error)
	}

	RecommendationRequest struct {
		Budget        float64  `json:"budget" validate:"required,gt=0"`
		Priorities    []string `json:"priorities" validate:"required,min=1"`
		IncludeStores *bool    `json:"include_stores"`
	}

	QuickRecommendationRequest struct {
		Budget float64 `json:"budget" validate:"required,gt=0"`
	}
)

var recommendationPriorities = []map[string]string{
	{"key": "camera", "display": "Camera Quality", "description": "Prioritize phones with excellent cameras"},
	{"key": "storage", "display": "Storage Capacity", "description": "Prioritize phones with more storage"},
	{"key": "gaming", "display": "Gaming Performance", "description": "Prioritize phones optimized for gaming"},
	{"key": "battery", "display": "Battery Life", "description": "Prioritize phones with long battery life"},
	{"key": "display", "display": "Display Quality", "description": "Prioritize phones with great displays"},
	{"key": "performance", "display": "Overall Performance", "description": "Prioritize phones with fast processors"},
}

// Balanced defaults for the quick endpoint.
var quickPriorities = []string{"performance", "camera", "battery"}

func NewRecommendationHandler(recommenderService RecommenderService, catalog CatalogService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:    validator.New(),
		recommender: recommenderService,
		catalog:     catalog,
		timeout:     10 * time.Second,
	}
}

func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var req RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	includeStores := true
	if req.IncludeStores != nil {
		includeStores = *req.IncludeStores
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load catalog", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendationRequests.Inc()

	result, err := h.recommender.Recommend(ctx, products, req.Budget, req.Priorities, includeStores)
	if err != nil {
		if errors.Is(err, recommender.ErrInvalidPriority) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to build recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *RecommendationHandler) QuickRecommend(c echo.Context) error {
	var req QuickRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load catalog", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	result, err := h.recommender.Recommend(ctx, products, req.Budget, quickPriorities, true)
	if err != nil {
		logger.Error("Failed to build quick recommendation", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if result.BestChoice == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"recommendation": nil,
			"message":        fmt.Sprintf("No phones found under $%g", req.Budget),
		})
	}

	price := 0.0
	for _, rec := range result.Recommendations {
		if rec.Product == result.BestChoice.Product {
			price = rec.OnlinePrice
			break
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommendation": result.BestChoice.Product,
		"price":          price,
		"reason":         fmt.Sprintf("Best overall phone under $%g", req.Budget),
		"quick_tip":      "Ask me to compare specific features for a detailed analysis!",
	})
}

func (h *RecommendationHandler) Priorities(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"priorities": recommendationPriorities,
	})
}
