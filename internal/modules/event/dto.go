package event

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=150"`
	Category    string    `json:"category" validate:"max=50"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	HallID      *int64    `json:"hall_id" validate:"omitempty,gt=0"`
}
