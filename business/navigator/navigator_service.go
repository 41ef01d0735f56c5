package navigator

import (
	"strconv"
	"strings"

	"sparkAgent/domain"
)

// Service resolves a parsed command into a storefront page target.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Target decides where the storefront should navigate for a command.
// Returns nil for intents with no navigation side effect.
func (s *Service) Target(command domain.ParsedCommand) *domain.NavigationTarget {
	switch command.Intent {
	case domain.IntentSearch:
		query := ""
		if p, ok := command.Params.(domain.SearchParams); ok {
			query = p.Query
		}
		return &domain.NavigationTarget{
			Page:   "products.html",
			Params: map[string]string{"search": query, "aiMode": "true"},
		}

	case domain.IntentShowOrder:
		count := 10
		if p, ok := command.Params.(domain.OrdersParams); ok {
			count = p.Count
		}
		return &domain.NavigationTarget{
			Page:   "orders.html",
			Params: map[string]string{"count": strconv.Itoa(count), "aiMode": "true"},
		}

	case domain.IntentNavigate:
		target := ""
		if p, ok := command.Params.(domain.NavigateParams); ok {
			target = strings.ToLower(p.Target)
		}
		return resolveTarget(target)

	default:
		return nil
	}
}

func resolveTarget(target string) *domain.NavigationTarget {
	switch {
	case strings.Contains(target, "cart"):
		return &domain.NavigationTarget{Page: "cart.html"}
	case strings.Contains(target, "order"):
		return &domain.NavigationTarget{Page: "orders.html"}
	case strings.Contains(target, "product"):
		return &domain.NavigationTarget{Page: "products.html"}
	case strings.Contains(target, "home"), strings.Contains(target, "main"):
		return &domain.NavigationTarget{Page: "index.html"}
	case strings.Contains(target, "account"), strings.Contains(target, "profile"):
		return &domain.NavigationTarget{Page: "account.html"}
	default:
		// unknown targets land on a product search
		return &domain.NavigationTarget{
			Page:   "products.html",
			Params: map[string]string{"search": target},
		}
	}
}

// Breadcrumb renders the breadcrumb trail for a page.
func (s *Service) Breadcrumb(page string) string {
	breadcrumbs := map[string]string{
		"index.html":    "Home",
		"products.html": "Home > Products",
		"product.html":  "Home > Products > Product Details",
		"cart.html":     "Home > Cart",
		"orders.html":   "Home > My Orders",
		"account.html":  "Home > My Account",
	}

	if crumb, ok := breadcrumbs[page]; ok {
		return crumb
	}
	return "Home"
}
