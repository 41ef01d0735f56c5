package actions

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"sparkAgent/domain"
	"sparkAgent/pkg/logger"
)

// CatalogRepository is the read-only catalog contract.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (domain.Product, error)
}

var mockOrders = []domain.Order{
	{OrderID: "WM-2024-001", Date: "2024-01-15", Total: 156.47, Items: 3, Status: "Delivered"},
	{OrderID: "WM-2024-002", Date: "2024-01-18", Total: 89.99, Items: 1, Status: "Delivered"},
	{OrderID: "WM-2024-003", Date: "2024-01-22", Total: 234.56, Items: 5, Status: "In Transit"},
}

var positiveAspects = []string{
	"Great build quality",
	"Excellent value for money",
	"Fast shipping",
	"Works as advertised",
	"Easy to use",
}

var concerns = []string{
	"Could be cheaper",
	"Packaging could be better",
	"Instructions could be clearer",
}

// Service implements the simple agent actions: catalog search, the
// mocked cart and order history, and review summaries. Cart totals and
// summary phrasing are randomized behind the injected source.
type Service struct {
	catalog CatalogRepository

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(catalog CatalogRepository, rng *rand.Rand) *Service {
	return &Service{catalog: catalog, rng: rng}
}

// SearchProducts matches the query against product names. When
// nothing matches it still returns the first catalog entry with a
// reduced match score, simulating fuzzy search.
func (s *Service) SearchProducts(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when searching products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.catalog.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load catalog for search", err)
		return nil, err
	}

	queryLower := strings.ToLower(query)

	results := []domain.SearchResult{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), queryLower) {
			results = append(results, domain.SearchResult{
				ID:         p.ID,
				Name:       p.Name,
				Price:      p.Price,
				Rating:     p.Rating,
				MatchScore: 0.9,
			})
		}
	}

	if len(results) == 0 && len(products) > 0 {
		first := products[0]
		results = append(results, domain.SearchResult{
			ID:         first.ID,
			Name:       first.Name,
			Price:      first.Price,
			Rating:     first.Rating,
			MatchScore: 0.6,
		})
	}

	return results, nil
}

// AddToCart simulates adding an item to the cart.
func (s *Service) AddToCart(productID string, quantity int) domain.CartResult {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	cartTotal := 1 + s.rng.Intn(5)
	s.mu.Unlock()

	return domain.CartResult{
		Success:        true,
		ProductID:      productID,
		Quantity:       quantity,
		CartTotalItems: cartTotal,
		Message:        fmt.Sprintf("Added %d item(s) to your cart", quantity),
	}
}

// RecentOrders returns up to count entries from the mocked history.
func (s *Service) RecentOrders(count int) []domain.Order {
	if count > len(mockOrders) || count < 0 {
		count = len(mockOrders)
	}
	return mockOrders[:count]
}

// ReviewSummary condenses a product's reviews. Known products get
// their real overall rating and review count; unknown ones fall back
// to plausible mock figures.
func (s *Service) ReviewSummary(ctx context.Context, productID string) (domain.ReviewSummary, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when summarizing reviews")
		return domain.ReviewSummary{}, fmt.Errorf("context error: %w", err)
	}

	overall := 0.0
	total := 0

	if id, err := strconv.Atoi(productID); err == nil {
		if product, err := s.catalog.FindByID(ctx, id); err == nil && len(product.Reviews) > 0 {
			sum := 0
			for _, r := range product.Reviews {
				sum += r.Rating
			}
			overall = math.Round(float64(sum)/float64(len(product.Reviews))*100) / 100
			total = len(product.Reviews)
		}
	}

	s.mu.Lock()
	if total == 0 {
		overall = math.Round((4.0+s.rng.Float64()*0.8)*100) / 100
		total = 100 + s.rng.Intn(1901)
	}
	praises := sample(s.rng, positiveAspects, 3)
	concern := concerns[s.rng.Intn(len(concerns))]
	s.mu.Unlock()

	return domain.ReviewSummary{
		OverallRating: overall,
		TotalReviews:  total,
		Summary: fmt.Sprintf(
			"Customers are generally satisfied with this product. Common praises include: %s. Some minor concerns: %s.",
			strings.Join(praises, ", "), concern,
		),
		Recommendation: "87% of customers would recommend this product",
		KeyPoints:      praises,
	}, nil
}

func sample(rng *rand.Rand, options []string, n int) []string {
	if n > len(options) {
		n = len(options)
	}
	picked := make([]string, 0, n)
	for _, idx := range rng.Perm(len(options))[:n] {
		picked = append(picked, options[idx])
	}
	return picked
}
