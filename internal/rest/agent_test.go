package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkAgent/business/navigator"
	"sparkAgent/domain"
)

type stubAgentService struct {
	resp *domain.AgentResponse
	err  error
}

func (s *stubAgentService) ProcessCommand(ctx context.Context, command string, reqCtx map[string]any) (*domain.AgentResponse, error) {
	return s.resp, s.err
}

func (s *stubAgentService) Suggestions() []string {
	return []string{"Show me iPhone 13"}
}

type stubActionService struct{}

func (s *stubActionService) AddToCart(productID string, quantity int) domain.CartResult {
	return domain.CartResult{
		Success:        true,
		ProductID:      productID,
		Quantity:       quantity,
		CartTotalItems: 2,
		Message:        "Added 1 item(s) to your cart",
	}
}

func newAgentTestHandler(agent AgentService) *AgentHandler {
	return NewAgentHandler(agent, navigator.NewService(), &stubActionService{})
}

func doJSON(t *testing.T, handler echo.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestProcessCommand_OK(t *testing.T) {
	handler := newAgentTestHandler(&stubAgentService{
		resp: &domain.AgentResponse{
			Action:  domain.IntentSearch,
			Message: "Found 2 products for 'iphone'",
			Status:  "success",
		},
	})

	rec := doJSON(t, handler.ProcessCommand, http.MethodPost, "/api/agent/command",
		`{"command": "show me iphone"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.AgentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.IntentSearch, resp.Action)
	assert.Equal(t, "success", resp.Status)
}

func TestProcessCommand_MissingCommand(t *testing.T) {
	handler := newAgentTestHandler(&stubAgentService{})

	rec := doJSON(t, handler.ProcessCommand, http.MethodPost, "/api/agent/command", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNavigate(t *testing.T) {
	handler := newAgentTestHandler(&stubAgentService{})

	rec := doJSON(t, handler.Navigate, http.MethodPost, "/api/agent/navigate",
		`{"target": "my cart"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Navigation domain.NavigationTarget `json:"navigation"`
		Breadcrumb string                  `json:"breadcrumb"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cart.html", resp.Navigation.Page)
	assert.Equal(t, "Home > Cart", resp.Breadcrumb)
}

func TestSummarize_Truncates(t *testing.T) {
	handler := newAgentTestHandler(&stubAgentService{})

	rec := doJSON(t, handler.Summarize, http.MethodPost, "/api/agent/summarize",
		`{"content": "abcdefghij", "max_length": 4}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Summary        string `json:"summary"`
		OriginalLength int    `json:"original_length"`
		SummaryLength  int    `json:"summary_length"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abcd...", resp.Summary)
	assert.Equal(t, 10, resp.OriginalLength)
	assert.Equal(t, 7, resp.SummaryLength)
}

func TestPerformAction_AddToCart(t *testing.T) {
	handler := newAgentTestHandler(&stubAgentService{})

	rec := doJSON(t, handler.PerformAction, http.MethodPost, "/api/agent/action",
		`{"action_type": "add_to_cart", "product_id": "3", "quantity": 1}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.CartResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "3", result.ProductID)
}

func TestPerformAction_Unknown(t *testing.T) {
	handler := newAgentTestHandler(&stubAgentService{})

	rec := doJSON(t, handler.PerformAction, http.MethodPost, "/api/agent/action",
		`{"action_type": "teleport"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown action: teleport")
}

func TestSuggestions_Endpoint(t *testing.T) {
	handler := newAgentTestHandler(&stubAgentService{})

	rec := doJSON(t, handler.Suggestions, http.MethodGet, "/api/agent/suggestions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show me iPhone 13")
}
