package domain

// Order is one entry in the (mocked) order history.
type Order struct {
	OrderID string  `json:"order_id"`
	Date    string  `json:"date"`
	Total   float64 `json:"total"`
	Items   int     `json:"items"`
	Status  string  `json:"status"`
}

// CartResult reports the outcome of an add-to-cart action.
type CartResult struct {
	Success        bool   `json:"success"`
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	CartTotalItems int    `json:"cart_total_items"`
	Message        string `json:"message"`
}

// ReviewSummary condenses a product's reviews for the summarize intent.
type ReviewSummary struct {
	OverallRating  float64  `json:"overall_rating"`
	TotalReviews   int      `json:"total_reviews"`
	Summary        string   `json:"summary"`
	Recommendation string   `json:"recommendation"`
	KeyPoints      []string `json:"key_points"`
}
