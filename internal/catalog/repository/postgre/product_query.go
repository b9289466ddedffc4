package postgre

import (
	"fmt"
	"strings"

	"workout-core/internal/model"
)

// buildProductQuery builds the WHERE clause, LIMIT suffix and args for
// GetAllFiltered. Every set field is an AND condition.
func buildProductQuery(f model.ProductFilter) (where string, limit string, args []any) {
	var conditions []string
	idx := 1

	if f.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", idx))
		args = append(args, *f.CategoryID)
		idx++
	}
	if f.ExcludeProductID != nil {
		conditions = append(conditions, fmt.Sprintf("id <> $%d", idx))
		args = append(args, *f.ExcludeProductID)
		idx++
	}
	if f.Color != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(color) = LOWER($%d)", idx))
		args = append(args, *f.Color)
		idx++
	}
	if f.Size != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(size) = LOWER($%d)", idx))
		args = append(args, *f.Size)
		idx++
	}
	if f.SearchTerm != nil {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", idx, idx))
		args = append(args, "%"+*f.SearchTerm+"%")
		idx++
	}

	if len(conditions) == 0 {
		where = "1=1"
	} else {
		where = strings.Join(conditions, " AND ")
	}

	if f.Count != nil && *f.Count > 0 {
		limit = fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, *f.Count)
	}
	return where, limit, args
}
