package rest

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"sparkAgent/domain"
)

type (
	StoreHandler struct {
		validate *validator.Validate
		stores   StoreService
	}

	StoreService interface {
		NearbyStorePrices(productID int, onlinePrice float64, limit int) []domain.StoreQuote
		StoreDetails(storeID int) *domain.StoreDetails
		BestDeal(productID int, onlinePrice float64) domain.BestDeal
	}

	BestDealQuery struct {
		ProductID int     `query:"product_id" validate:"required"`
		Price     float64 `query:"price" validate:"required,gt=0"`
	}
)

func NewStoreHandler(stores StoreService) *StoreHandler {
	return &StoreHandler{
		validate: validator.New(),
		stores:   stores,
	}
}

func (h *StoreHandler) GetStoreByID(c echo.Context) error {
	storeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid store id"})
	}

	details := h.stores.StoreDetails(storeID)
	if details == nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "store not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find store by id",
		"store":   details,
	})
}

func (h *StoreHandler) GetBestDeal(c echo.Context) error {
	var q BestDealQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	deal := h.stores.BestDeal(q.ProductID, q.Price)

	return c.JSON(http.StatusOK, deal)
}
