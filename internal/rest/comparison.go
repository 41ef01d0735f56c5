package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"sparkAgent/business/comparator"
	"sparkAgent/domain"
	"sparkAgent/pkg/logger"
	"sparkAgent/pkg/metrics"
)

type (
	ComparisonHandler struct {
		validate   *validator.Validate
		comparator ComparatorService
		catalog    CatalogService
		timeout    time.Duration
	}

	ComparatorService interface {
		Compare(ctx context.Context, products []domain.Product, criteria []string) (*domain.ComparisonResult, error)
	}

	CatalogService interface {
		FindAll(ctx context.Context) ([]domain.Product, error)
		FindByID(ctx context.Context, id int) (domain.Product, error)
	}

	ComparisonRequest struct {
		CartItems []string `json:"cart_items" validate:"required,min=2"`
		Criteria  []string `json:"criteria" validate:"required,min=1"`
	}
)

// Criterion descriptions served by the criteria endpoint.
var comparisonCriteria = []map[string]string{
	{"key": "battery", "display": "Battery Life", "description": "Battery capacity and user feedback"},
	{"key": "camera", "display": "Camera Quality", "description": "Camera specs and photo quality"},
	{"key": "performance", "display": "Performance", "description": "Speed and gaming capabilities"},
	{"key": "display", "display": "Display", "description": "Screen quality and features"},
	{"key": "storage", "display": "Storage", "description": "Internal storage capacity"},
	{"key": "build", "display": "Build Quality", "description": "Materials and durability"},
}

func NewComparisonHandler(comparatorService ComparatorService, catalog CatalogService) *ComparisonHandler {
	return &ComparisonHandler{
		validate:   validator.New(),
		comparator: comparatorService,
		catalog:    catalog,
		timeout:    10 * time.Second,
	}
}

func (h *ComparisonHandler) Compare(c echo.Context) error {
	var req ComparisonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	var products []domain.Product
	for _, idStr := range req.CartItems {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		product, err := h.catalog.FindByID(ctx, id)
		if err != nil {
			continue
		}
		products = append(products, product)
	}

	if len(products) < 2 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "At least 2 products are required for comparison"})
	}

	metrics.ComparisonRequests.Inc()

	result, err := h.comparator.Compare(ctx, products, req.Criteria)
	if err != nil {
		if errors.Is(err, comparator.ErrInsufficientProducts) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to compare products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *ComparisonHandler) Criteria(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"criteria": comparisonCriteria,
	})
}
