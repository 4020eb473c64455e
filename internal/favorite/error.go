package favorite

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrAlreadyFavorite = errors.New("product already in favorites")
	ErrNotInFavorites  = errors.New("product not in favorites")
)
