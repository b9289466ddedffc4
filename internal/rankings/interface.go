package rankings

import "context"

// UseCase is the rankings/gamification surface.
type UseCase interface {
	// GetRank resolves a user's point total in one category to its band
	// and the points missing to the next band. Users without points yet
	// resolve to the lowest band at 0 points.
	GetRank(ctx context.Context, input GetRankInput) (GetRankOutput, error)

	// AwardPoints accumulates points (monotonic) and returns the new total
	// with its band.
	AwardPoints(ctx context.Context, input AwardPointsInput) (AwardPointsOutput, error)

	// ListBands returns the active band table, lowest band first.
	ListBands(ctx context.Context) (ListBandsOutput, error)
}
