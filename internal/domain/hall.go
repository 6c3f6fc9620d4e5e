package domain

import (
	"time"

	"venuebook/internal/pkg/money"
)

// Hall is a bookable venue. It is read-only input to pricing: a booking
// operation never mutates it.
type Hall struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name" validate:"required"`
	City         string      `json:"city,omitempty"`
	State        string      `json:"state,omitempty"`
	Location     string      `json:"location,omitempty"`
	Latitude     *float64    `json:"latitude,omitempty"`
	Longitude    *float64    `json:"longitude,omitempty"`
	Capacity     int         `json:"capacity" validate:"required,gt=0"`
	PricePerHour money.Money `json:"price_per_hour" validate:"required,gt=0"`
	Description  string      `json:"description,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
