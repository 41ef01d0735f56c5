package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"sparkAgent/domain"
	"sparkAgent/pkg/logger"
	"sparkAgent/pkg/metrics"
)

type (
	AgentHandler struct {
		validate     *validator.Validate
		agentService AgentService
		navigator    NavigatorService
		actions      ActionService
		timeout      time.Duration
	}

	AgentService interface {
		ProcessCommand(ctx context.Context, command string, reqCtx map[string]any) (*domain.AgentResponse, error)
		Suggestions() []string
	}

	NavigatorService interface {
		Target(command domain.ParsedCommand) *domain.NavigationTarget
		Breadcrumb(page string) string
	}

	ActionService interface {
		AddToCart(productID string, quantity int) domain.CartResult
	}

	CommandRequest struct {
		Command string         `json:"command" validate:"required"`
		Context map[string]any `json:"context"`
	}

	NavigateRequest struct {
		Target string `json:"target" validate:"required"`
	}

	ExtractRequest struct {
		ExtractType string `json:"extract_type" validate:"required"`
	}

	SummarizeRequest struct {
		Content   string `json:"content" validate:"required"`
		MaxLength int    `json:"max_length"`
	}

	ActionRequest struct {
		ActionType string `json:"action_type" validate:"required"`
		ProductID  string `json:"product_id"`
		Quantity   int    `json:"quantity"`
	}
)

func NewAgentHandler(agentService AgentService, navigator NavigatorService, actions ActionService) *AgentHandler {
	return &AgentHandler{
		validate:     validator.New(),
		agentService: agentService,
		navigator:    navigator,
		actions:      actions,
		timeout:      10 * time.Second,
	}
}

func (h *AgentHandler) ProcessCommand(c echo.Context) error {
	var req CommandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	resp, err := h.agentService.ProcessCommand(ctx, req.Command, req.Context)
	metrics.AgentCommandLatency.Observe(time.Since(started).Seconds())
	if err != nil {
		logger.Error("Failed to process command", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) Navigate(c echo.Context) error {
	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	navigation := h.navigator.Target(domain.ParsedCommand{
		Intent: domain.IntentNavigate,
		Params: domain.NavigateParams{Target: req.Target},
	})

	page := ""
	if navigation != nil {
		page = navigation.Page
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"navigation": navigation,
		"breadcrumb": h.navigator.Breadcrumb(page),
	})
}

func (h *AgentHandler) Extract(c echo.Context) error {
	var req ExtractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	switch req.ExtractType {
	case "products":
		return c.JSON(http.StatusOK, map[string]interface{}{
			"extracted": map[string]interface{}{
				"product_count": 24,
				"categories":    []string{"Electronics", "Home", "Grocery"},
				"price_range":   map[string]float64{"min": 9.99, "max": 999.99},
			},
		})
	case "reviews":
		return c.JSON(http.StatusOK, map[string]interface{}{
			"extracted": map[string]interface{}{
				"review_count":       156,
				"average_rating":     4.3,
				"verified_purchases": 142,
			},
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"extracted": map[string]interface{}{
			"type":    req.ExtractType,
			"content": "General content",
		},
	})
}

func (h *AgentHandler) Summarize(c echo.Context) error {
	var req SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if req.MaxLength <= 0 {
		req.MaxLength = 200
	}

	summary := req.Content
	if len(req.Content) > req.MaxLength {
		summary = req.Content[:req.MaxLength] + "..."
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"summary":         summary,
		"original_length": len(req.Content),
		"summary_length":  len(summary),
	})
}

func (h *AgentHandler) PerformAction(c echo.Context) error {
	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	switch req.ActionType {
	case "add_to_cart":
		productID := req.ProductID
		if productID == "" {
			productID = "unknown"
		}
		result := h.actions.AddToCart(productID, req.Quantity)
		return c.JSON(http.StatusOK, result)

	case "remove_from_cart":
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":          true,
			"message":          "Item removed from cart",
			"cart_total_items": 2,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": false,
		"message": "Unknown action: " + req.ActionType,
	})
}

func (h *AgentHandler) Suggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"suggestions": h.agentService.Suggestions(),
	})
}
