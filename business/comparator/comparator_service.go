package comparator

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sparkAgent/business/analyzer"
	"sparkAgent/domain"
	"sparkAgent/pkg/logger"
)

// ErrInsufficientProducts is returned when fewer than two products are
// supplied; a comparison needs at least two sides.
var ErrInsufficientProducts = errors.New("at least 2 products are required for comparison")

const defaultCriterionScore = 60

// Alias table: each criterion is resolved against a product's
// specification keys in this order, first hit wins.
var specAliases = map[string][]string{
	"battery":   {"battery_capacity", "battery", "battery_mah"},
	"camera":    {"main_camera", "camera", "rear_camera"},
	"storage":   {"storage", "internal_storage", "memory"},
	"display":   {"display_size", "screen_size", "display"},
	"processor": {"processor", "chipset", "cpu"},
	"ram":       {"ram", "memory_ram"},
}

var (
	mahSpec = regexp.MustCompile(`(?i)(\d+)\s*mah`)
	mpSpec  = regexp.MustCompile(`(?i)(\d+)\s*mp`)
)

type Service struct {
	analyzer *analyzer.Service
}

func NewService(reviewAnalyzer *analyzer.Service) *Service {
	return &Service{analyzer: reviewAnalyzer}
}

// Compare builds a side-by-side comparison of the given products over
// the given criteria, with per-criterion winners and an overall
// recommendation. Products are evaluated in slice order; score ties
// keep the first product encountered.
func (s *Service) Compare(ctx context.Context, products []domain.Product, criteria []string) (*domain.ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when comparing products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(products) < 2 {
		logger.Error("comparison requested with too few products", "count", len(products))
		return nil, ErrInsufficientProducts
	}

	comparison := make(map[string]domain.ProductComparison, len(products))
	for _, product := range products {
		entry := domain.ProductComparison{
			Name:           product.Name,
			Price:          product.Price,
			Specs:          make(map[string]string, len(criteria)),
			ReviewAnalysis: make(map[string]domain.FeatureAnalysis, len(criteria)),
		}

		for _, criterion := range criteria {
			entry.Specs[criterion] = resolveSpec(product.Specifications, criterion)
			analysis := s.analyzer.AnalyzeFeatures(product.Reviews, []string{criterion})
			entry.ReviewAnalysis[criterion] = analysis[criterion]
		}

		comparison[productKey(product.ID)] = entry
	}

	return &domain.ComparisonResult{
		Comparison:       comparison,
		Summary:          buildSummary(products, comparison, criteria),
		Recommendation:   s.recommend(products, comparison, criteria),
		WinnerByCriteria: winnersByCriteria(products, comparison, criteria),
	}, nil
}

func productKey(id int) string {
	return fmt.Sprintf("product_%d", id)
}

func resolveSpec(specs map[string]string, criterion string) string {
	keys, ok := specAliases[criterion]
	if !ok {
		keys = []string{criterion}
	}

	for _, key := range keys {
		if value, ok := specs[key]; ok {
			return value
		}
	}

	return "Not specified"
}

func buildSummary(products []domain.Product, comparison map[string]domain.ProductComparison, criteria []string) string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	parts := []string{fmt.Sprintf("Comparing %s:", strings.Join(names, " vs "))}

	for _, criterion := range criteria {
		var b strings.Builder
		b.WriteString("\n" + capitalize(criterion) + ":")

		for _, p := range products {
			entry := comparison[productKey(p.ID)]
			spec := entry.Specs[criterion]
			analysis := entry.ReviewAnalysis[criterion]

			if analysis.MentionCount > 0 {
				b.WriteString(fmt.Sprintf("\n- %s: %s (User rating: %g/5)", entry.Name, spec, analysis.AverageRating))
			} else {
				b.WriteString(fmt.Sprintf("\n- %s: %s", entry.Name, spec))
			}
		}

		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n")
}

// recommend scores every product per criterion and picks the strict
// maximum by mean score.
func (s *Service) recommend(products []domain.Product, comparison map[string]domain.ProductComparison, criteria []string) domain.ComparisonRecommendation {
	scores := make(map[string]domain.ProductScoreDetail, len(products))

	bestName := ""
	bestTotal := -1.0

	for _, p := range products {
		entry := comparison[productKey(p.ID)]

		total := 0.0
		criteriaScores := make(map[string]float64, len(criteria))

		for _, criterion := range criteria {
			score := criterionScore(entry, criterion)
			criteriaScores[criterion] = score
			total += score
		}

		if len(criteria) > 0 {
			total /= float64(len(criteria))
		}

		scores[entry.Name] = domain.ProductScoreDetail{Total: total, CriteriaScores: criteriaScores}

		if total > bestTotal {
			bestTotal = total
			bestName = entry.Name
		}
	}

	return domain.ComparisonRecommendation{
		RecommendedProduct: bestName,
		Reason:             recommendationReason(bestName, scores[bestName], criteria),
		Scores:             scores,
	}
}

// criterionScore converts a criterion's review rating into a 0-100
// score with spec bonuses for big batteries and high-resolution cameras.
func criterionScore(entry domain.ProductComparison, criterion string) float64 {
	analysis := entry.ReviewAnalysis[criterion]

	score := float64(defaultCriterionScore)
	if analysis.MentionCount > 0 {
		score = analysis.AverageRating * 20
	}

	spec := entry.Specs[criterion]
	switch criterion {
	case "battery":
		if v, ok := specNumber(mahSpec, spec); ok && v > 5000 {
			score += 10
		}
	case "camera":
		if v, ok := specNumber(mpSpec, spec); ok && v > 100 {
			score += 10
		}
	}

	if score > 100 {
		score = 100
	}

	return score
}

func specNumber(pattern *regexp.Regexp, spec string) (int, bool) {
	m := pattern.FindStringSubmatch(spec)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

func recommendationReason(name string, detail domain.ProductScoreDetail, criteria []string) string {
	strengths := []string{}
	for _, criterion := range criteria {
		if detail.CriteriaScores[criterion] >= 80 {
			strengths = append(strengths, criterion)
		}
	}

	reason := name + " is recommended because it "
	switch {
	case len(strengths) > 1:
		reason += fmt.Sprintf("excels in %s and %s",
			strings.Join(strengths[:len(strengths)-1], ", "), strengths[len(strengths)-1])
	case len(strengths) == 1:
		reason += "excels in " + strengths[0]
	default:
		reason += "offers the best overall balance"
	}

	return reason + fmt.Sprintf(" with an overall score of %.1f/100.", detail.Total)
}

// winnersByCriteria picks, per criterion, the product with the
// strictly highest review rating among those with mentions. No
// mentions anywhere means "Tie".
func winnersByCriteria(products []domain.Product, comparison map[string]domain.ProductComparison, criteria []string) map[string]string {
	winners := make(map[string]string, len(criteria))

	for _, criterion := range criteria {
		best := ""
		bestRating := 0.0

		for _, p := range products {
			entry := comparison[productKey(p.ID)]
			if rating := entry.ReviewAnalysis[criterion].AverageRating; rating > bestRating {
				bestRating = rating
				best = entry.Name
			}
		}

		if best == "" {
			best = "Tie"
		}
		winners[criterion] = best
	}

	return winners
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
