package rankings

import "workout-core/internal/model"

// ResolveBand maps a raw point total to its band, scanning ascending.
// Points at or above the top band's max clamp to the last band: callers
// treat "maxed out" as a valid steady state, never an error. The band
// list must already be validated (see ValidateBands); this function does
// not sort or check it.
func ResolveBand(points int, bands []model.RankDefinition) model.RankDefinition {
	for _, b := range bands {
		if b.Contains(points) {
			return b
		}
	}
	return bands[len(bands)-1]
}

// PointsToNextBand returns how many points are missing to leave the
// current band. In or above the top band the answer clamps at 0.
func PointsToNextBand(points int, bands []model.RankDefinition) int {
	band := ResolveBand(points, bands)
	if remaining := band.MaxPoints - points; remaining > 0 {
		return remaining
	}
	return 0
}
