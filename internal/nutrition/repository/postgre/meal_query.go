package postgre

import (
	"fmt"
	"strings"

	"workout-core/internal/model"
	"workout-core/pkg/rangebucket"
)

// buildMealQuery assembles the filtered SELECT. Every set field becomes an
// AND condition; bucket names resolve through pkg/rangebucket, and an
// unrecognized bucket resolves to an unbounded range that adds nothing.
func buildMealQuery(f model.MealFilter) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	appendCond := func(cond string, vals ...any) {
		placeholders := make([]any, len(vals))
		for i := range vals {
			placeholders[i] = idx
			idx++
		}
		conditions = append(conditions, fmt.Sprintf(cond, placeholders...))
		args = append(args, vals...)
	}

	appendRange := func(column string, r rangebucket.Range) {
		if r.Unbounded() {
			return
		}
		if r.Min > 0 {
			appendCond(column+" >= $%d", r.Min)
		}
		if r.HasMax {
			appendCond(column+" <= $%d", r.Max)
		}
	}

	if f.Type != nil {
		appendCond("LOWER(type) = LOWER($%d)", *f.Type)
	}
	if f.CookingLevel != nil {
		appendCond("LOWER(cooking_level) = LOWER($%d)", *f.CookingLevel)
	}
	if f.CookingTimeRange != nil {
		appendRange("cooking_time_min", rangebucket.CookingTime(*f.CookingTimeRange))
	}
	if f.CalorieRange != nil {
		appendRange("calories", rangebucket.Calories(*f.CalorieRange))
	}
	if f.MaxCookingTime != nil {
		appendCond("cooking_time_min <= $%d", *f.MaxCookingTime)
	}
	if f.SearchTerm != nil {
		term := "%" + *f.SearchTerm + "%"
		appendCond("(name ILIKE $%d OR description ILIKE $%d)", term, term)
	}

	query := fmt.Sprintf(`SELECT %s FROM meals`, mealColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	return query, args
}
