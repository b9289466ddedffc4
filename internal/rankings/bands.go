package rankings

import (
	"fmt"

	"workout-core/internal/model"
)

// DefaultBands is the compiled-in rank ladder, lowest band first. It is
// used when no rank_definitions rows exist in the store. Band edits ship
// with a redeploy; there is no runtime mutation path.
func DefaultBands() []model.RankDefinition {
	return []model.RankDefinition{
		{ID: 1, Name: "Beginner", MinPoints: 0, MaxPoints: 1000, Color: model.RGBA{R: 150, G: 150, B: 150, A: 255}, ImagePath: "/assets/ranks/beginner.png"},
		{ID: 2, Name: "Bronze", MinPoints: 1000, MaxPoints: 2250, Color: model.RGBA{R: 205, G: 127, B: 50, A: 255}, ImagePath: "/assets/ranks/bronze.png"},
		{ID: 3, Name: "Silver", MinPoints: 2250, MaxPoints: 3500, Color: model.RGBA{R: 192, G: 192, B: 192, A: 255}, ImagePath: "/assets/ranks/silver.png"},
		{ID: 4, Name: "Gold", MinPoints: 3500, MaxPoints: 5000, Color: model.RGBA{R: 255, G: 215, B: 0, A: 255}, ImagePath: "/assets/ranks/gold.png"},
		{ID: 5, Name: "Platinum", MinPoints: 5000, MaxPoints: 7000, Color: model.RGBA{R: 67, G: 179, B: 174, A: 255}, ImagePath: "/assets/ranks/platinum.png"},
		{ID: 6, Name: "Diamond", MinPoints: 7000, MaxPoints: 8500, Color: model.RGBA{R: 86, G: 174, B: 255, A: 255}, ImagePath: "/assets/ranks/diamond.png"},
		{ID: 7, Name: "Grandmaster", MinPoints: 8500, MaxPoints: 9500, Color: model.RGBA{R: 220, G: 20, B: 60, A: 255}, ImagePath: "/assets/ranks/grandmaster.png"},
		{ID: 8, Name: "Challenger", MinPoints: 9500, MaxPoints: 10000, Color: model.RGBA{R: 148, G: 0, B: 211, A: 255}, ImagePath: "/assets/ranks/challenger.png"},
	}
}

// ValidateBands checks the load-time invariant: bands partition the
// non-negative integers into contiguous ascending half-open ranges
// starting at 0. The resolver itself never re-checks or sorts.
func ValidateBands(bands []model.RankDefinition) error {
	if len(bands) == 0 {
		return fmt.Errorf("band list is empty")
	}
	if bands[0].MinPoints != 0 {
		return fmt.Errorf("first band %q starts at %d, want 0", bands[0].Name, bands[0].MinPoints)
	}
	for i, b := range bands {
		if b.MaxPoints <= b.MinPoints {
			return fmt.Errorf("band %q has empty range [%d, %d)", b.Name, b.MinPoints, b.MaxPoints)
		}
		if i > 0 && b.MinPoints != bands[i-1].MaxPoints {
			return fmt.Errorf("gap or overlap between %q and %q: %d != %d",
				bands[i-1].Name, b.Name, bands[i-1].MaxPoints, b.MinPoints)
		}
	}
	return nil
}
