package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"sparkAgent/business/actions"
	"sparkAgent/business/comparator"
	"sparkAgent/business/navigator"
	"sparkAgent/business/parser"
	"sparkAgent/business/recommender"
	"sparkAgent/domain"
	"sparkAgent/pkg/logger"
	"sparkAgent/pkg/metrics"
)

var helpSuggestions = []string{
	"Show me iPhone 13",
	"Add it to my cart",
	"Summarize the reviews",
	"Show my recent orders",
}

var commandSuggestions = []string{
	"Show me iPhone 13",
	"Get me laptops under $500",
	"What do the reviews say?",
	"Add this to my cart",
	"Show my last 5 orders",
	"Take me to my cart",
	"Find Samsung TVs",
	"Summarize this product",
}

// Service routes parsed commands to the feature services and wraps
// every outcome in an AgentResponse envelope.
type Service struct {
	parser      *parser.Service
	navigator   *navigator.Service
	actions     *actions.Service
	comparator  *comparator.Service
	recommender *recommender.Service
	catalog     actions.CatalogRepository
}

func NewService(
	commandParser *parser.Service,
	nav *navigator.Service,
	actionHandler *actions.Service,
	productComparator *comparator.Service,
	productRecommender *recommender.Service,
	catalog actions.CatalogRepository,
) *Service {
	return &Service{
		parser:      commandParser,
		navigator:   nav,
		actions:     actionHandler,
		comparator:  productComparator,
		recommender: productRecommender,
		catalog:     catalog,
	}
}

// ProcessCommand parses a natural language command and dispatches it.
// reqCtx carries client-side state such as the product currently on
// screen and the cart contents.
func (s *Service) ProcessCommand(ctx context.Context, command string, reqCtx map[string]any) (*domain.AgentResponse, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when processing command")
		return nil, fmt.Errorf("context error: %w", err)
	}

	parsed := s.parser.Parse(command)
	metrics.AgentCommandsTotal.WithLabelValues(string(parsed.Intent)).Inc()

	if parsed.Intent == domain.IntentUnknown {
		logger.Info("unrecognized command", "command", command)
		return s.withSession(reqCtx, &domain.AgentResponse{
			Action:      parsed.Intent,
			Message:     "I didn't understand that command. Try saying things like 'Show me iPhone 13' or 'What do reviews say?'",
			Status:      "error",
			Suggestions: helpSuggestions,
		}), nil
	}

	navigation := s.navigator.Target(parsed)

	switch params := parsed.Params.(type) {
	case domain.SearchParams:
		products, err := s.actions.SearchProducts(ctx, params.Query)
		if err != nil {
			return nil, err
		}
		return s.withSession(reqCtx, &domain.AgentResponse{
			Action:     parsed.Intent,
			Message:    fmt.Sprintf("Found %d products for '%s'", len(products), params.Query),
			Navigation: navigation,
			Data:       map[string]any{"products": products},
			Status:     "success",
		}), nil

	case domain.OrdersParams:
		orders := s.actions.RecentOrders(params.Count)
		return s.withSession(reqCtx, &domain.AgentResponse{
			Action:     parsed.Intent,
			Message:    fmt.Sprintf("Here are your last %d orders", len(orders)),
			Navigation: navigation,
			Data:       map[string]any{"orders": orders},
			Status:     "success",
		}), nil

	case domain.NavigateParams:
		target := params.Target
		if target == "" {
			target = "requested page"
		}
		return s.withSession(reqCtx, &domain.AgentResponse{
			Action:     parsed.Intent,
			Message:    fmt.Sprintf("Navigating to %s", target),
			Navigation: navigation,
			Status:     "success",
		}), nil

	case domain.CompareParams:
		return s.handleCompare(ctx, reqCtx, parsed.Intent, params, navigation)

	case domain.RecommendParams:
		return s.handleRecommend(ctx, reqCtx, parsed.Intent, params, navigation)
	}

	switch parsed.Intent {
	case domain.IntentAddToCart:
		productID := contextString(reqCtx, "current_product_id", "unknown")
		result := s.actions.AddToCart(productID, 1)
		status := "success"
		if !result.Success {
			status = "error"
		}
		return s.withSession(reqCtx, &domain.AgentResponse{
			Action:  parsed.Intent,
			Message: result.Message,
			Data:    result,
			Status:  status,
		}), nil

	case domain.IntentSummarize:
		productID := contextString(reqCtx, "current_product_id", "unknown")
		summary, err := s.actions.ReviewSummary(ctx, productID)
		if err != nil {
			return nil, err
		}
		return s.withSession(reqCtx, &domain.AgentResponse{
			Action:  parsed.Intent,
			Message: "Here's what customers are saying:",
			Summary: summary.Summary,
			Data:    summary,
			Status:  "success",
		}), nil
	}

	return s.withSession(reqCtx, &domain.AgentResponse{
		Action:     parsed.Intent,
		Message:    "Processing your request...",
		Navigation: navigation,
		Data:       parsed.Params,
		Status:     "success",
	}), nil
}

// Suggestions returns the canned command suggestions shown to new
// users.
func (s *Service) Suggestions() []string {
	return append([]string{}, commandSuggestions...)
}

func (s *Service) handleCompare(
	ctx context.Context,
	reqCtx map[string]any,
	intent domain.Intent,
	params domain.CompareParams,
	navigation *domain.NavigationTarget,
) (*domain.AgentResponse, error) {
	products, err := s.resolveComparison(ctx, reqCtx, params)
	if err != nil {
		return nil, err
	}

	criteria := params.Criteria
	if len(criteria) == 0 {
		criteria = []string{"performance", "camera", "battery"}
	}

	if len(products) < 2 {
		// Not enough context to run the comparison server side; hand
		// the parsed parameters back so the client can collect more.
		return s.withSession(reqCtx, &domain.AgentResponse{
			Action:     intent,
			Message:    "Processing your request...",
			Navigation: navigation,
			Data:       params,
			Status:     "success",
		}), nil
	}

	result, err := s.comparator.Compare(ctx, products, criteria)
	if err != nil {
		return nil, err
	}

	return s.withSession(reqCtx, &domain.AgentResponse{
		Action:     intent,
		Message:    fmt.Sprintf("Here's how your %d products compare:", len(products)),
		Navigation: navigation,
		Data:       result,
		Status:     "success",
	}), nil
}

func (s *Service) handleRecommend(
	ctx context.Context,
	reqCtx map[string]any,
	intent domain.Intent,
	params domain.RecommendParams,
	navigation *domain.NavigationTarget,
) (*domain.AgentResponse, error) {
	products, err := s.catalog.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.recommender.Recommend(ctx, products, params.Budget, params.Priorities, false)
	if err != nil {
		return nil, err
	}

	message := result.Message
	if message == "" {
		message = fmt.Sprintf("Here are my top picks under $%g", params.Budget)
	}

	return s.withSession(reqCtx, &domain.AgentResponse{
		Action:     intent,
		Message:    message,
		Navigation: navigation,
		Data:       result,
		Status:     "success",
	}), nil
}

// resolveComparison turns compare parameters into catalog products,
// either from the cart ids in the request context or by matching the
// named products against the catalog.
func (s *Service) resolveComparison(ctx context.Context, reqCtx map[string]any, params domain.CompareParams) ([]domain.Product, error) {
	if params.UseCart {
		var products []domain.Product
		for _, id := range cartProductIDs(reqCtx) {
			product, err := s.catalog.FindByID(ctx, id)
			if err != nil {
				logger.Warn("skipping unknown cart product", "product_id", id)
				continue
			}
			products = append(products, product)
		}
		return products, nil
	}

	all, err := s.catalog.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	for _, name := range []string{params.Product1, params.Product2} {
		if name == "" {
			continue
		}
		needle := strings.ToLower(strings.TrimSpace(name))
		for _, p := range all {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				products = append(products, p)
				break
			}
		}
	}
	return products, nil
}

func (s *Service) withSession(reqCtx map[string]any, resp *domain.AgentResponse) *domain.AgentResponse {
	if sid := contextString(reqCtx, "session_id", ""); sid != "" {
		resp.SessionID = sid
	} else {
		resp.SessionID = uuid.NewString()
	}
	return resp
}

func contextString(reqCtx map[string]any, key, fallback string) string {
	if reqCtx == nil {
		return fallback
	}
	v, ok := reqCtx[key]
	if !ok {
		return fallback
	}
	switch value := v.(type) {
	case string:
		if value != "" {
			return value
		}
	case float64:
		return strconv.Itoa(int(value))
	case int:
		return strconv.Itoa(value)
	}
	return fallback
}

// cartProductIDs reads cart item ids out of the request context. JSON
// numbers arrive as float64, but ids sent as strings are accepted too.
func cartProductIDs(reqCtx map[string]any) []int {
	if reqCtx == nil {
		return nil
	}
	raw, ok := reqCtx["cart_items"].([]any)
	if !ok {
		return nil
	}

	var ids []int
	for _, item := range raw {
		switch v := item.(type) {
		case float64:
			ids = append(ids, int(v))
		case int:
			ids = append(ids, v)
		case string:
			if id, err := strconv.Atoi(v); err == nil {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
