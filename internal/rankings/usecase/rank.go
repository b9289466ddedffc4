package usecase

import (
	"context"
	"fmt"

	"workout-core/internal/model"
	"workout-core/internal/rankings"
	repo "workout-core/internal/rankings/repository"
)

// GetRank resolves a user's point total to its band. Results are cached
// briefly; AwardPoints invalidates the entry.
func (uc *implUseCase) GetRank(ctx context.Context, input rankings.GetRankInput) (rankings.GetRankOutput, error) {
	if input.CategoryKey == "" {
		return rankings.GetRankOutput{}, rankings.ErrInvalidCategory
	}

	cacheKey := fmt.Sprintf("%d:%s", input.UserID, input.CategoryKey)
	if cached, ok := uc.cache.Get(cacheKey); ok {
		return cached, nil
	}

	ranking, found, err := uc.repo.GetRanking(ctx, repo.GetRankingOptions{
		UserID:      input.UserID,
		CategoryKey: input.CategoryKey,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetRank GetRanking: %v", err)
		return rankings.GetRankOutput{}, err
	}
	if !found {
		// New users start in the lowest band at zero points.
		ranking = model.Ranking{UserID: input.UserID, CategoryKey: input.CategoryKey}
	}

	output := rankings.GetRankOutput{
		Ranking:      ranking,
		Band:         rankings.ResolveBand(ranking.Points, uc.bands),
		PointsToNext: rankings.PointsToNextBand(ranking.Points, uc.bands),
	}
	uc.cache.Add(cacheKey, output)
	return output, nil
}

// AwardPoints accumulates points and returns the new total with its band.
func (uc *implUseCase) AwardPoints(ctx context.Context, input rankings.AwardPointsInput) (rankings.AwardPointsOutput, error) {
	if input.CategoryKey == "" {
		return rankings.AwardPointsOutput{}, rankings.ErrInvalidCategory
	}
	if input.Points <= 0 {
		return rankings.AwardPointsOutput{}, rankings.ErrInvalidPoints
	}

	ranking, err := uc.repo.AddPoints(ctx, repo.AddPointsOptions{
		UserID:      input.UserID,
		CategoryKey: input.CategoryKey,
		Points:      input.Points,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AwardPoints AddPoints: %v", err)
		return rankings.AwardPointsOutput{}, err
	}

	uc.cache.Remove(fmt.Sprintf("%d:%s", input.UserID, input.CategoryKey))

	return rankings.AwardPointsOutput{
		Ranking: ranking,
		Band:    rankings.ResolveBand(ranking.Points, uc.bands),
	}, nil
}

// ListBands returns the active band table.
func (uc *implUseCase) ListBands(ctx context.Context) (rankings.ListBandsOutput, error) {
	return rankings.ListBandsOutput{Bands: uc.bands}, nil
}
