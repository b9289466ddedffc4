package model

// RGBA is an opaque display color carried through to callers.
type RGBA struct {
	R uint8 `db:"color_r" json:"r"`
	G uint8 `db:"color_g" json:"g"`
	B uint8 `db:"color_b" json:"b"`
	A uint8 `db:"color_a" json:"a"`
}

// RankDefinition is one band of the rank ladder: a half-open point range
// [MinPoints, MaxPoints) mapped to a display name, color and icon.
type RankDefinition struct {
	ID        int    `db:"id"`
	Name      string `db:"name"`
	MinPoints int    `db:"min_points"` // inclusive
	MaxPoints int    `db:"max_points"` // exclusive
	Color     RGBA
	ImagePath string `db:"image_path"`
}

// EntityID implements storage.Entity.
func (r RankDefinition) EntityID() int { return r.ID }

// Contains reports whether points falls inside the band.
func (r RankDefinition) Contains(points int) bool {
	return points >= r.MinPoints && points < r.MaxPoints
}

// Ranking is a user's accumulated point total in one category
// (muscle group in the original app).
type Ranking struct {
	ID          int    `db:"id"`
	UserID      int    `db:"user_id"`
	CategoryKey string `db:"category_key"`
	Points      int    `db:"points"`
}

// EntityID implements storage.Entity.
func (r Ranking) EntityID() int { return r.ID }
