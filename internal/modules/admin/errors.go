package admin

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidAction   = errors.New("invalid moderation action")
)
