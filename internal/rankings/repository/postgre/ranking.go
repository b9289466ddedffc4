package postgre

import (
	"context"
	"database/sql"
	"errors"

	"workout-core/internal/model"
	repo "workout-core/internal/rankings/repository"
	"workout-core/pkg/apperror"
)

// GetRanking fetches one user's point record in one category.
// Absence is reported via the found flag, not an error.
func (r *implRepository) GetRanking(ctx context.Context, opt repo.GetRankingOptions) (model.Ranking, bool, error) {
	const query = `
		SELECT id, user_id, category_key, points
		FROM rankings
		WHERE user_id = $1 AND category_key = $2`

	var ranking model.Ranking
	err := r.db.GetContext(ctx, &ranking, query, opt.UserID, opt.CategoryKey)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Ranking{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRanking"), err)
		return model.Ranking{}, false, apperror.Infrastructure(err, "get ranking")
	}
	return ranking, true, nil
}

// AddPoints upserts the record and accumulates points atomically.
func (r *implRepository) AddPoints(ctx context.Context, opt repo.AddPointsOptions) (model.Ranking, error) {
	const query = `
		INSERT INTO rankings (user_id, category_key, points)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, category_key)
		DO UPDATE SET points = rankings.points + EXCLUDED.points
		RETURNING id, user_id, category_key, points`

	var ranking model.Ranking
	err := r.db.GetContext(ctx, &ranking, query, opt.UserID, opt.CategoryKey, opt.Points)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddPoints"), err)
		return model.Ranking{}, apperror.Infrastructure(err, "add points")
	}
	return ranking, nil
}

// ListBands returns stored band definitions ordered ascending.
func (r *implRepository) ListBands(ctx context.Context) ([]model.RankDefinition, error) {
	const query = `
		SELECT id, name, min_points, max_points, color_r, color_g, color_b, color_a, image_path
		FROM rank_definitions
		ORDER BY min_points ASC`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBands"), err)
		return nil, apperror.Infrastructure(err, "list bands")
	}
	defer rows.Close()

	var bands []model.RankDefinition
	for rows.Next() {
		var b model.RankDefinition
		if err := rows.Scan(
			&b.ID, &b.Name, &b.MinPoints, &b.MaxPoints,
			&b.Color.R, &b.Color.G, &b.Color.B, &b.Color.A, &b.ImagePath,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBands"), err)
			return nil, apperror.Infrastructure(err, "list bands")
		}
		bands = append(bands, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBands"), err)
		return nil, apperror.Infrastructure(err, "list bands")
	}
	return bands, nil
}
