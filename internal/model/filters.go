package model

import (
	"encoding/json"

	"workout-core/internal/storage"
	"workout-core/pkg/apperror"
)

// Filter value types. Optional criteria are pointers: nil means "no
// constraint on this field". A filter with every field unset is equivalent
// to no filtering at all — stores must return the same set as GetAll.
// All set fields combine with logical AND.

// ProductFilter narrows product queries.
type ProductFilter struct {
	CategoryID       *int    `json:"category_id"`
	ExcludeProductID *int    `json:"exclude_product_id"`
	Count            *int    `json:"count"` // cap on result length
	Color            *string `json:"color"`
	Size             *string `json:"size"`
	SearchTerm       *string `json:"search_term"`
}

// Empty implements storage.Filter.
func (f ProductFilter) Empty() bool {
	return f.CategoryID == nil && f.ExcludeProductID == nil && f.Count == nil &&
		f.Color == nil && f.Size == nil && f.SearchTerm == nil
}

// CategoryFilter narrows category queries.
type CategoryFilter struct {
	CategoryID *int `json:"category_id"`
}

// Empty implements storage.Filter.
func (f CategoryFilter) Empty() bool { return f.CategoryID == nil }

// CartItemFilter narrows cart item queries.
type CartItemFilter struct {
	ProductID  *int `json:"product_id"`
	CustomerID *int `json:"customer_id"`
}

// Empty implements storage.Filter.
func (f CartItemFilter) Empty() bool { return f.ProductID == nil && f.CustomerID == nil }

// MealFilter narrows meal queries. CookingTimeRange and CalorieRange are
// bucket names resolved through pkg/rangebucket; unrecognized names are
// pass-through, not errors.
type MealFilter struct {
	Type             *string `json:"type"`
	CookingLevel     *string `json:"cooking_level"`
	CookingTimeRange *string `json:"cooking_time_range"` // quick / medium / long
	CalorieRange     *string `json:"calorie_range"`      // low / medium / high
	SearchTerm       *string `json:"search_term"`
	MaxCookingTime   *int    `json:"max_cooking_time"`
}

// Empty implements storage.Filter.
func (f MealFilter) Empty() bool {
	return f.Type == nil && f.CookingLevel == nil && f.CookingTimeRange == nil &&
		f.CalorieRange == nil && f.SearchTerm == nil && f.MaxCookingTime == nil
}

// Filter kinds accepted by the JSON search boundary.
const (
	FilterKindProduct  = "product"
	FilterKindCategory = "category"
	FilterKindCartItem = "cart_item"
	FilterKindMeal     = "meal"
)

// DecodeFilter decodes a kind-tagged JSON filter payload into its concrete
// variant. This is the one late-binding point: everywhere else filters are
// typed at compile time, and stores reject a mismatched variant with a
// TypeMismatch error via storage.As.
func DecodeFilter(kind string, raw json.RawMessage) (storage.Filter, error) {
	unmarshal := func(v any) error {
		if len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return apperror.Validation("malformed %s filter: %v", kind, err)
		}
		return nil
	}

	switch kind {
	case FilterKindProduct:
		var f ProductFilter
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		return f, nil
	case FilterKindCategory:
		var f CategoryFilter
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		return f, nil
	case FilterKindCartItem:
		var f CartItemFilter
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		return f, nil
	case FilterKindMeal:
		var f MealFilter
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, apperror.Validation("unknown filter kind %q", kind)
	}
}
