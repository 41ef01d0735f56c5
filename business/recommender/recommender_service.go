package recommender

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"sparkAgent/business/analyzer"
	"sparkAgent/domain"
	"sparkAgent/pkg/logger"
)

// ErrInvalidPriority is returned when a requested priority is outside
// the fixed valid set.
var ErrInvalidPriority = errors.New("invalid priority")

var validPriorities = map[string]bool{
	"camera":      true,
	"storage":     true,
	"gaming":      true,
	"battery":     true,
	"display":     true,
	"performance": true,
}

const (
	topRecommendations = 3
	storeQuoteLimit    = 3
)

// StoreFinder supplies nearby-store quotes for a product. Quotes are
// non-deterministic across calls; the recommender only consumes their
// shape.
type StoreFinder interface {
	NearbyStorePrices(productID int, onlinePrice float64, limit int) []domain.StoreQuote
}

type Service struct {
	analyzer *analyzer.Service
	stores   StoreFinder
}

func NewService(reviewAnalyzer *analyzer.Service, stores StoreFinder) *Service {
	return &Service{analyzer: reviewAnalyzer, stores: stores}
}

// Recommend filters the catalog to the budget, scores each eligible
// product on the requested priorities, and returns the top three with
// a best choice that balances quality and value. An empty budget
// filter is a valid empty result, not an error.
func (s *Service) Recommend(
	ctx context.Context,
	products []domain.Product,
	budget float64,
	priorities []string,
	includeStores bool,
) (*domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when recommending products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	for _, priority := range priorities {
		if !validPriorities[priority] {
			logger.Error("rejected unknown priority", "priority", priority)
			return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
		}
	}

	var eligible []domain.Product
	for _, p := range products {
		if p.Price <= budget {
			eligible = append(eligible, p)
		}
	}

	if len(eligible) == 0 {
		return &domain.RecommendationResult{
			Recommendations:    []domain.ScoredProduct{},
			BestChoice:         nil,
			PrioritiesAnalyzed: priorities,
			Budget:             budget,
			Message:            fmt.Sprintf("No products found within budget of $%g", budget),
		}, nil
	}

	scored := make([]domain.ScoredProduct, 0, len(eligible))
	for _, product := range eligible {
		scores := s.priorityScores(product, priorities)

		overall := 0.0
		if len(scores) > 0 {
			sum := 0.0
			for _, v := range scores {
				sum += v
			}
			overall = round1(sum / float64(len(scores)))
		}

		entry := domain.ScoredProduct{
			Product:      product.Name,
			ProductID:    product.ID,
			OnlinePrice:  product.Price,
			Score:        scores,
			OverallScore: overall,
			ValueScore:   valueScore(overall, product.Price, budget),
		}

		if includeStores {
			entry.StorePrices = s.stores.NearbyStorePrices(product.ID, product.Price, storeQuoteLimit)
		}

		scored = append(scored, entry)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OverallScore > scored[j].OverallScore
	})

	if len(scored) > topRecommendations {
		scored = scored[:topRecommendations]
	}

	return &domain.RecommendationResult{
		Recommendations:    scored,
		BestChoice:         bestChoice(scored, priorities),
		PrioritiesAnalyzed: priorities,
		Budget:             budget,
	}, nil
}

func (s *Service) priorityScores(product domain.Product, priorities []string) map[string]float64 {
	scores := make(map[string]float64, len(priorities))

	for _, priority := range priorities {
		switch priority {
		case "camera":
			scores[priority] = s.scoreCamera(product)
		case "storage":
			scores[priority] = scoreStorage(product)
		case "gaming":
			scores[priority] = scoreGaming(product)
		case "battery":
			scores[priority] = scoreBattery(product)
		case "display":
			scores[priority] = scoreDisplay(product)
		case "performance":
			scores[priority] = scoreGaming(product) * 0.9
		default:
			scores[priority] = s.scoreFromReviews(product, priority)
		}
	}

	return scores
}

// valueScore rewards cheaper-relative-to-budget options without
// letting the price term dominate.
func valueScore(overall, price, budget float64) float64 {
	priceRatio := price / budget
	return round1(overall * (1 - priceRatio*0.3))
}

// bestChoice picks the recommendation maximizing a 70/30 blend of
// overall and value score. Strict maximum, first encountered wins.
func bestChoice(recommendations []domain.ScoredProduct, priorities []string) *domain.BestChoice {
	if len(recommendations) == 0 {
		return nil
	}

	var best *domain.ScoredProduct
	bestCombined := 0.0

	for i := range recommendations {
		combined := recommendations[i].OverallScore*0.7 + recommendations[i].ValueScore*0.3
		if combined > bestCombined {
			bestCombined = combined
			best = &recommendations[i]
		}
	}

	if best == nil {
		return nil
	}

	reasons := []string{}
	for _, priority := range priorities {
		if score, ok := best.Score[priority]; ok && score >= 80 {
			reasons = append(reasons, "excellent "+priority)
		}
	}
	if best.ValueScore >= 70 {
		reasons = append(reasons, "great value for money")
	}

	choice := &domain.BestChoice{
		Product:      best.Product,
		ProductID:    best.ProductID,
		OverallScore: best.OverallScore,
		Reasons:      reasons,
	}

	if len(best.StorePrices) > 0 {
		deal := best.StorePrices[0]
		for _, quote := range best.StorePrices[1:] {
			if quote.Price < deal.Price {
				deal = quote
			}
		}
		choice.BestStoreDeal = &deal
		choice.Savings = best.OnlinePrice - deal.Price
	}

	return choice
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
