package model

// Meal is a recipe with its nutrition facts and ingredient references.
type Meal struct {
	ID             int    `db:"id"`
	Name           string `db:"name"`
	Type           string `db:"type"`          // breakfast, lunch, dinner, snack
	CookingLevel   string `db:"cooking_level"` // easy, intermediate, advanced
	CookingTimeMin int    `db:"cooking_time_min"`
	Calories       int    `db:"calories"`
	Description    string `db:"description"`

	// IngredientIDs are resolved against the ingredient store on
	// create/update; a missing reference fails the whole write.
	IngredientIDs []int `db:"-"`
}

// EntityID implements storage.Entity.
func (m Meal) EntityID() int { return m.ID }

// Ingredient is a food component referenced by meals.
type Ingredient struct {
	ID       int     `db:"id"`
	Name     string  `db:"name"`
	Calories int     `db:"calories"`
	Protein  float64 `db:"protein"`
	Carbs    float64 `db:"carbs"`
	Fat      float64 `db:"fat"`
}

// EntityID implements storage.Entity.
func (i Ingredient) EntityID() int { return i.ID }
