package nutrition

import "errors"

var (
	ErrMealNotFound       = errors.New("meal not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrUnknownIngredient  = errors.New("referenced ingredient does not exist")
)
