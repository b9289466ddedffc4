package rankings

import "errors"

var (
	ErrInvalidPoints   = errors.New("points must be positive")
	ErrInvalidCategory = errors.New("category key is required")
)
