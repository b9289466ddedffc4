package repository

import (
	"context"

	"workout-core/internal/model"
)

// Repository is the data store for per-user points and band definitions.
type Repository interface {
	// GetRanking returns a user's point record in one category and
	// whether it exists. Absence is not an error: new users have no row.
	GetRanking(ctx context.Context, opt GetRankingOptions) (model.Ranking, bool, error)

	// AddPoints accumulates points onto the user's record, creating it
	// at zero first when missing, and returns the updated record.
	AddPoints(ctx context.Context, opt AddPointsOptions) (model.Ranking, error)

	// ListBands returns stored band definitions ordered by min_points
	// ascending. An empty result means the caller should fall back to the
	// compiled-in table.
	ListBands(ctx context.Context) ([]model.RankDefinition, error)
}
