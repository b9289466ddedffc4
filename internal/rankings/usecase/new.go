package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"workout-core/internal/model"
	"workout-core/internal/rankings"
	"workout-core/internal/rankings/repository"
	"workout-core/pkg/log"
)

const (
	rankCacheSize = 4096
	rankCacheTTL  = 30 * time.Second
)

// implUseCase is the private implementation of rankings.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	// bands is loaded once at construction and never mutated.
	bands []model.RankDefinition

	cache *expirable.LRU[string, rankings.GetRankOutput]
}

// New creates the rankings UseCase. Bands come from the store when rows
// exist, otherwise from the compiled-in table; either way the list is
// validated once here and treated as immutable afterwards.
func New(ctx context.Context, repo repository.Repository, l log.Logger, cacheTTL time.Duration) (*implUseCase, error) {
	bands, err := repo.ListBands(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bands: %w", err)
	}
	if len(bands) == 0 {
		bands = rankings.DefaultBands()
		l.Infof(ctx, "rankings: no stored bands, using compiled-in table (%d bands)", len(bands))
	}
	if err := rankings.ValidateBands(bands); err != nil {
		return nil, fmt.Errorf("invalid band table: %w", err)
	}

	if cacheTTL <= 0 {
		cacheTTL = rankCacheTTL
	}

	return &implUseCase{
		repo:  repo,
		l:     l,
		bands: bands,
		cache: expirable.NewLRU[string, rankings.GetRankOutput](rankCacheSize, nil, cacheTTL),
	}, nil
}
