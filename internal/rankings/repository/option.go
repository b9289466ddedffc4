package repository

// GetRankingOptions identifies one user's record in one category.
type GetRankingOptions struct {
	UserID      int
	CategoryKey string
}

// AddPointsOptions holds parameters for accumulating points.
type AddPointsOptions struct {
	UserID      int
	CategoryKey string
	Points      int
}
