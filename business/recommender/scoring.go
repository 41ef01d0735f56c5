package recommender

import (
	"regexp"
	"strconv"
	"strings"

	"sparkAgent/domain"
)

// Spec-driven feature scores. Each returns 0-100; base 50 unless the
// tier table says otherwise.

var (
	megapixels = regexp.MustCompile(`(?i)(\d+)\s*MP`)
	gigabytes  = regexp.MustCompile(`(?i)(\d+)\s*GB`)
	milliamps  = regexp.MustCompile(`(?i)(\d+)\s*mAh`)
)

func (s *Service) scoreCamera(product domain.Product) float64 {
	score := 50.0

	if mp, ok := specInt(megapixels, product.Specifications["main_camera"]); ok {
		switch {
		case mp >= 108:
			score = 95
		case mp >= 64:
			score = 85
		case mp >= 48:
			score = 75
		case mp >= 12:
			score = 65
		}
	}

	if len(product.Reviews) > 0 {
		if rating := s.reviewRating(product.Reviews, "camera"); rating > 0 {
			score = (score + rating*20) / 2
		}
	}

	return clamp100(score)
}

func scoreStorage(product domain.Product) float64 {
	score := 50.0

	if gb, ok := specInt(gigabytes, product.Specifications["storage"]); ok {
		switch {
		case gb >= 512:
			score = 95
		case gb >= 256:
			score = 85
		case gb >= 128:
			score = 70
		case gb >= 64:
			score = 55
		}
	}

	return clamp100(score)
}

func scoreGaming(product domain.Product) float64 {
	score := 50.0

	processor := strings.ToLower(product.Specifications["processor"])
	switch {
	case strings.Contains(processor, "snapdragon 8"),
		strings.Contains(processor, "a17"),
		strings.Contains(processor, "a16"):
		score = 90
	case strings.Contains(processor, "snapdragon 7"),
		strings.Contains(processor, "a15"):
		score = 75
	case strings.Contains(processor, "snapdragon 6"),
		strings.Contains(processor, "a14"):
		score = 60
	}

	if ram, ok := specInt(gigabytes, product.Specifications["ram"]); ok {
		if ram >= 12 {
			score += 10
		} else if ram >= 8 {
			score += 5
		}
	}

	display := strings.ToLower(product.Specifications["display"])
	if strings.Contains(display, "120hz") || strings.Contains(display, "144hz") {
		score += 5
	}

	return clamp100(score)
}

func scoreBattery(product domain.Product) float64 {
	score := 50.0

	if mah, ok := specInt(milliamps, product.Specifications["battery"]); ok {
		switch {
		case mah >= 5000:
			score = 90
		case mah >= 4500:
			score = 80
		case mah >= 4000:
			score = 70
		case mah >= 3500:
			score = 60
		}
	}

	return clamp100(score)
}

func scoreDisplay(product domain.Product) float64 {
	score := 60.0

	display := strings.ToLower(product.Specifications["display"])
	if strings.Contains(display, "amoled") || strings.Contains(display, "oled") {
		score += 20
	}
	if strings.Contains(display, "120hz") || strings.Contains(display, "144hz") {
		score += 15
	}
	if strings.Contains(display, "1080p") || strings.Contains(display, "fhd") {
		score += 5
	} else if strings.Contains(display, "1440p") || strings.Contains(display, "qhd") {
		score += 10
	}

	return clamp100(score)
}

// scoreFromReviews covers priorities without a dedicated tier table.
func (s *Service) scoreFromReviews(product domain.Product, feature string) float64 {
	if len(product.Reviews) == 0 {
		return 60
	}
	return clamp100(s.reviewRating(product.Reviews, feature) * 20)
}

func (s *Service) reviewRating(reviews []domain.Review, feature string) float64 {
	analysis := s.analyzer.AnalyzeFeatures(reviews, []string{feature})
	return analysis[feature].AverageRating
}

func specInt(pattern *regexp.Regexp, spec string) (int, bool) {
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

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
