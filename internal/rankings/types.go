package rankings

import "workout-core/internal/model"

// --- UseCase Inputs ---

type GetRankInput struct {
	UserID      int
	CategoryKey string
}

type AwardPointsInput struct {
	UserID      int
	CategoryKey string
	Points      int
}

// --- UseCase Outputs ---

type GetRankOutput struct {
	Ranking      model.Ranking
	Band         model.RankDefinition
	PointsToNext int
}

type AwardPointsOutput struct {
	Ranking model.Ranking
	Band    model.RankDefinition
}

type ListBandsOutput struct {
	Bands []model.RankDefinition
}
