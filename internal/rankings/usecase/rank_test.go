package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workout-core/internal/rankings"
	inmemRepo "workout-core/internal/rankings/repository/inmemory"
	"workout-core/internal/rankings/usecase"
	"workout-core/pkg/log"
)

func newUC(t *testing.T) rankings.UseCase {
	t.Helper()
	uc, err := usecase.New(context.Background(), inmemRepo.New(nil), log.NewNoop(), time.Minute)
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	return uc
}

func TestGetRank(t *testing.T) {
	ctx := context.Background()

	t.Run("New User Starts In Lowest Band", func(t *testing.T) {
		uc := newUC(t)
		out, err := uc.GetRank(ctx, rankings.GetRankInput{UserID: 1, CategoryKey: "chest"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Band.Name != "Beginner" {
			t.Errorf("expected Beginner, got %q", out.Band.Name)
		}
		if out.Ranking.Points != 0 || out.PointsToNext != 1000 {
			t.Errorf("expected 0 points and 1000 to next, got %d/%d", out.Ranking.Points, out.PointsToNext)
		}
	})

	t.Run("Missing Category Key", func(t *testing.T) {
		uc := newUC(t)
		_, err := uc.GetRank(ctx, rankings.GetRankInput{UserID: 1})
		if !errors.Is(err, rankings.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
	})
}

func TestAwardPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("Accumulates And Resolves Band", func(t *testing.T) {
		uc := newUC(t)
		for i := 0; i < 3; i++ {
			if _, err := uc.AwardPoints(ctx, rankings.AwardPointsInput{UserID: 7, CategoryKey: "legs", Points: 400}); err != nil {
				t.Fatalf("award: %v", err)
			}
		}
		out, err := uc.GetRank(ctx, rankings.GetRankInput{UserID: 7, CategoryKey: "legs"})
		if err != nil {
			t.Fatalf("get rank: %v", err)
		}
		if out.Ranking.Points != 1200 {
			t.Errorf("expected 1200 points, got %d", out.Ranking.Points)
		}
		if out.Band.Name != "Bronze" {
			t.Errorf("expected Bronze at 1200 points, got %q", out.Band.Name)
		}
		if out.PointsToNext != 1050 {
			t.Errorf("expected 1050 to next, got %d", out.PointsToNext)
		}
	})

	t.Run("Cache Invalidated On Award", func(t *testing.T) {
		uc := newUC(t)
		if _, err := uc.GetRank(ctx, rankings.GetRankInput{UserID: 2, CategoryKey: "back"}); err != nil {
			t.Fatalf("prime cache: %v", err)
		}
		if _, err := uc.AwardPoints(ctx, rankings.AwardPointsInput{UserID: 2, CategoryKey: "back", Points: 9999}); err != nil {
			t.Fatalf("award: %v", err)
		}
		out, err := uc.GetRank(ctx, rankings.GetRankInput{UserID: 2, CategoryKey: "back"})
		if err != nil {
			t.Fatalf("get rank: %v", err)
		}
		if out.Band.Name != "Challenger" {
			t.Errorf("expected fresh Challenger read after award, got %q", out.Band.Name)
		}
	})

	t.Run("Rejects Non-Positive Points", func(t *testing.T) {
		uc := newUC(t)
		_, err := uc.AwardPoints(ctx, rankings.AwardPointsInput{UserID: 1, CategoryKey: "arms", Points: 0})
		if !errors.Is(err, rankings.ErrInvalidPoints) {
			t.Errorf("expected ErrInvalidPoints, got %v", err)
		}
	})
}

func TestListBands(t *testing.T) {
	uc := newUC(t)
	out, err := uc.ListBands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Bands) != 8 {
		t.Fatalf("expected 8 bands, got %d", len(out.Bands))
	}
	if out.Bands[0].Name != "Beginner" || out.Bands[7].Name != "Challenger" {
		t.Errorf("band order wrong: first=%q last=%q", out.Bands[0].Name, out.Bands[7].Name)
	}
}
