package domain

// FeatureAnalysis is the per-feature result of mining a review list.
// Derived data, recomputed on every request.
type FeatureAnalysis struct {
	AverageRating    float64  `json:"average_rating"`
	MentionCount     int      `json:"mention_count"`
	PositiveMentions int      `json:"positive_mentions"`
	NegativeMentions int      `json:"negative_mentions"`
	SentimentScore   float64  `json:"sentiment_score"`
	SampleReviews    []string `json:"sample_reviews"`
}

// ProductComparison is one product's column in a side-by-side comparison.
type ProductComparison struct {
	Name           string                     `json:"name"`
	Price          float64                    `json:"price"`
	Specs          map[string]string          `json:"specs"`
	ReviewAnalysis map[string]FeatureAnalysis `json:"review_analysis"`
}

// ProductScoreDetail holds the criterion breakdown behind a
// comparison recommendation.
type ProductScoreDetail struct {
	Total          float64            `json:"total"`
	CriteriaScores map[string]float64 `json:"criteria_scores"`
}

// ComparisonRecommendation names the winning product and why.
type ComparisonRecommendation struct {
	RecommendedProduct string                        `json:"recommended_product"`
	Reason             string                        `json:"reason"`
	Scores             map[string]ProductScoreDetail `json:"scores"`
}

// ComparisonResult is the full output of comparing >=2 products.
type ComparisonResult struct {
	Comparison       map[string]ProductComparison `json:"comparison"`
	Summary          string                       `json:"summary"`
	Recommendation   ComparisonRecommendation     `json:"recommendation"`
	WinnerByCriteria map[string]string            `json:"winner_by_criteria"`
}

// StoreQuote is a nearby-store price for a product. Produced by the
// store locator; non-deterministic across calls by design.
type StoreQuote struct {
	Store        string  `json:"store"`
	StoreID      int     `json:"store_id"`
	Distance     string  `json:"distance"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability"`
	Rating       float64 `json:"rating"`
	Savings      float64 `json:"savings"`
	PriceMatch   bool    `json:"price_match"`
}

// StoreDetails is the full record for a single store.
type StoreDetails struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Distance       string   `json:"distance"`
	Rating         float64  `json:"rating"`
	Hours          string   `json:"hours"`
	Phone          string   `json:"phone"`
	Services       []string `json:"services"`
	PaymentOptions []string `json:"payment_options"`
}

// BestDeal ranks store quotes by price and distance.
type BestDeal struct {
	BestDeal  *StoreQuote  `json:"best_deal"`
	Reason    string       `json:"reason"`
	AllStores []StoreQuote `json:"all_stores,omitempty"`
}

// ScoredProduct is one ranked entry in a recommendation result.
type ScoredProduct struct {
	Product      string             `json:"product"`
	ProductID    int                `json:"product_id"`
	OnlinePrice  float64            `json:"online_price"`
	Score        map[string]float64 `json:"score"`
	OverallScore float64            `json:"overall_score"`
	ValueScore   float64            `json:"value_score"`
	StorePrices  []StoreQuote       `json:"store_prices,omitempty"`
}

// BestChoice is the single top pick after combining quality and value.
type BestChoice struct {
	Product       string      `json:"product"`
	ProductID     int         `json:"product_id"`
	OverallScore  float64     `json:"overall_score"`
	Reasons       []string    `json:"reasons"`
	BestStoreDeal *StoreQuote `json:"best_store_deal,omitempty"`
	Savings       float64     `json:"savings"`
}

// RecommendationResult is the full output of a budget recommendation.
type RecommendationResult struct {
	Recommendations    []ScoredProduct `json:"recommendations"`
	BestChoice         *BestChoice     `json:"best_choice"`
	PrioritiesAnalyzed []string        `json:"priorities_analyzed"`
	Budget             float64         `json:"budget"`
	Message            string          `json:"message,omitempty"`
}
