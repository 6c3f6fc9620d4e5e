package booking

import "errors"

var (
	ErrHallNotFound     = errors.New("hall not found")
	ErrNotFound         = errors.New("booking not found")
	ErrValidation       = errors.New("validation error")
	ErrSlotUnavailable  = errors.New("slot unavailable")
	ErrForbidden        = errors.New("forbidden")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)
