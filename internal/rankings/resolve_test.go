package rankings_test

import (
	"testing"

	"workout-core/internal/model"
	"workout-core/internal/rankings"
)

func TestResolveBandScenario(t *testing.T) {
	bands := rankings.DefaultBands()
	cases := []struct {
		points int
		want   string
	}{
		{0, "Beginner"},
		{999, "Beginner"},
		{1000, "Bronze"},
		{2249, "Bronze"},
		{2250, "Silver"},
		{3500, "Gold"},
		{5000, "Platinum"},
		{7000, "Diamond"},
		{8500, "Grandmaster"},
		{9499, "Grandmaster"},
		{9500, "Challenger"},
		{9999, "Challenger"},
	}
	for _, tc := range cases {
		if got := rankings.ResolveBand(tc.points, bands); got.Name != tc.want {
			t.Errorf("ResolveBand(%d) = %q, want %q", tc.points, got.Name, tc.want)
		}
	}
}

func TestResolveBandTotalCoverage(t *testing.T) {
	bands := rankings.DefaultBands()
	top := bands[len(bands)-1]

	for p := 0; p <= 10000; p++ {
		band := rankings.ResolveBand(p, bands)
		if p < band.MinPoints {
			t.Fatalf("ResolveBand(%d) returned %q starting at %d", p, band.Name, band.MinPoints)
		}
		if p >= band.MaxPoints && band.Name != top.Name {
			t.Fatalf("ResolveBand(%d) returned non-top band %q ending at %d", p, band.Name, band.MaxPoints)
		}
	}
}

func TestClampAtCap(t *testing.T) {
	bands := rankings.DefaultBands()

	if got := rankings.ResolveBand(10000, bands); got.Name != "Challenger" {
		t.Errorf("ResolveBand(10000) = %q, want clamp to Challenger", got.Name)
	}
	if got := rankings.ResolveBand(123456, bands); got.Name != "Challenger" {
		t.Errorf("ResolveBand(123456) = %q, want clamp to Challenger", got.Name)
	}
	if got := rankings.PointsToNextBand(10000, bands); got != 0 {
		t.Errorf("PointsToNextBand(10000) = %d, want 0", got)
	}
	if got := rankings.PointsToNextBand(9999, bands); got != 1 {
		t.Errorf("PointsToNextBand(9999) = %d, want 1", got)
	}
}

func TestPointsToNextBand(t *testing.T) {
	bands := rankings.DefaultBands()
	cases := []struct {
		points int
		want   int
	}{
		{0, 1000},
		{999, 1},
		{1000, 1250},
		{9500, 500},
		{10001, 0},
	}
	for _, tc := range cases {
		if got := rankings.PointsToNextBand(tc.points, bands); got != tc.want {
			t.Errorf("PointsToNextBand(%d) = %d, want %d", tc.points, got, tc.want)
		}
	}
}

func TestValidateBands(t *testing.T) {
	t.Run("Default Table Is Valid", func(t *testing.T) {
		if err := rankings.ValidateBands(rankings.DefaultBands()); err != nil {
			t.Errorf("default bands should validate: %v", err)
		}
	})

	t.Run("Empty List", func(t *testing.T) {
		if err := rankings.ValidateBands(nil); err == nil {
			t.Error("expected error for empty band list")
		}
	})

	t.Run("Gap Between Bands", func(t *testing.T) {
		bands := []model.RankDefinition{
			{Name: "A", MinPoints: 0, MaxPoints: 100},
			{Name: "B", MinPoints: 150, MaxPoints: 300},
		}
		if err := rankings.ValidateBands(bands); err == nil {
			t.Error("expected error for gap")
		}
	})

	t.Run("Nonzero Start", func(t *testing.T) {
		bands := []model.RankDefinition{{Name: "A", MinPoints: 10, MaxPoints: 100}}
		if err := rankings.ValidateBands(bands); err == nil {
			t.Error("expected error for nonzero start")
		}
	})

	t.Run("Empty Range", func(t *testing.T) {
		bands := []model.RankDefinition{{Name: "A", MinPoints: 0, MaxPoints: 0}}
		if err := rankings.ValidateBands(bands); err == nil {
			t.Error("expected error for empty range")
		}
	})
}
