// Package rangebucket maps named buckets ("quick", "low", ...) onto fixed
// numeric ranges. The same convention is shared by every entity family that
// filters on a bucketed numeric field, so the boundaries live here once.
package rangebucket

import "strings"

// Range is a closed-open-ish numeric range: Min <= v, and v <= Max when
// HasMax is set. Bucket boundaries are inclusive on both ends, so "quick"
// is [0, 15] and "medium" starts at 16.
type Range struct {
	Min    int
	Max    int
	HasMax bool
}

// Contains reports whether v falls inside the range.
func (r Range) Contains(v int) bool {
	if v < r.Min {
		return false
	}
	if r.HasMax && v > r.Max {
		return false
	}
	return true
}

// Unbounded reports whether the range accepts every value (pass-through).
func (r Range) Unbounded() bool { return r.Min == 0 && !r.HasMax }

// passThrough accepts everything; used for unrecognized bucket names.
var passThrough = Range{}

// CookingTime maps a cooking-time bucket name to its range in minutes.
// Unrecognized names pass through rather than erroring.
func CookingTime(bucket string) Range {
	switch strings.ToLower(strings.TrimSpace(bucket)) {
	case "quick":
		return Range{Min: 0, Max: 15, HasMax: true}
	case "medium":
		return Range{Min: 16, Max: 45, HasMax: true}
	case "long":
		return Range{Min: 46}
	default:
		return passThrough
	}
}

// Calories maps a calorie bucket name to its range in kcal.
// Unrecognized names pass through rather than erroring.
func Calories(bucket string) Range {
	switch strings.ToLower(strings.TrimSpace(bucket)) {
	case "low":
		return Range{Min: 0, Max: 300, HasMax: true}
	case "medium":
		return Range{Min: 301, Max: 600, HasMax: true}
	case "high":
		return Range{Min: 601}
	default:
		return passThrough
	}
}
