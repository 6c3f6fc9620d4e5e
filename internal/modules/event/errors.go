package event

import "errors"

var ErrHallNotFound = errors.New("hall not found")
