package domain

// Review is a single customer review attached to a catalog product.
type Review struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// Product is an immutable catalog entry. The catalog repository owns
// the data; services only ever read it.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"original_price,omitempty"`
	Rating         float64           `json:"rating,omitempty"`
	ReviewsCount   int               `json:"reviews_count,omitempty"`
	Category       string            `json:"category,omitempty"`
	Specifications map[string]string `json:"specifications"`
	Reviews        []Review          `json:"reviews,omitempty"`
}

// SearchResult is one hit from a catalog search.
type SearchResult struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Rating     float64 `json:"rating"`
	MatchScore float64 `json:"match_score"`
}
