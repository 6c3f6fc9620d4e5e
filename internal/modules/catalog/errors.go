package catalog

import "errors"

var (
	ErrNotFound  = errors.New("hall not found")
	ErrNameTaken = errors.New("hall name already in use")

	errInvalidPrice = errors.New("invalid price")
)
