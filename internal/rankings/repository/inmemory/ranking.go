// Package inmemory is the driverless rankings store used in local mode
// and tests. Points live in a map keyed by user and category.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	"workout-core/internal/model"
	repo "workout-core/internal/rankings/repository"
)

type implRepository struct {
	mu       sync.RWMutex
	rankings map[string]model.Ranking
	nextID   int
	bands    []model.RankDefinition
}

// New creates an in-memory rankings Repository. The bands slice is what
// ListBands reports; pass nil to force the compiled-in fallback upstream.
func New(bands []model.RankDefinition) repo.Repository {
	return &implRepository{
		rankings: make(map[string]model.Ranking),
		nextID:   1,
		bands:    bands,
	}
}

func key(userID int, categoryKey string) string {
	return fmt.Sprintf("%d:%s", userID, categoryKey)
}

func (r *implRepository) GetRanking(ctx context.Context, opt repo.GetRankingOptions) (model.Ranking, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ranking, ok := r.rankings[key(opt.UserID, opt.CategoryKey)]
	return ranking, ok, nil
}

func (r *implRepository) AddPoints(ctx context.Context, opt repo.AddPointsOptions) (model.Ranking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(opt.UserID, opt.CategoryKey)
	ranking, ok := r.rankings[k]
	if !ok {
		ranking = model.Ranking{
			ID:          r.nextID,
			UserID:      opt.UserID,
			CategoryKey: opt.CategoryKey,
		}
		r.nextID++
	}
	ranking.Points += opt.Points
	r.rankings[k] = ranking
	return ranking, nil
}

func (r *implRepository) ListBands(ctx context.Context) ([]model.RankDefinition, error) {
	return r.bands, nil
}
