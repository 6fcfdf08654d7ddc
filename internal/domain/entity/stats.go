package entity

// Stats is a point-in-time summary over the catalog and the click log.
// TotalClicks counts click records and can differ from the sum of Product.Clicks.
type Stats struct {
	TotalProducts       int64           `json:"totalProducts"`
	TotalClicks         int64           `json:"totalClicks"`
	PotentialIncome     float64         `json:"potentialIncome"`
	CategoryStats       []CategoryCount `json:"categoryStats"`
	TopProductsByClicks []ProductClicks `json:"topProductsByClicks"`
}

// CategoryCount is the number of products in one category.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int64    `json:"count"`
}

// ProductClicks is the reduced product view used by the top-by-clicks ranking.
type ProductClicks struct {
	Title  string `json:"title"`
	Clicks int64  `json:"clicks"`
}
