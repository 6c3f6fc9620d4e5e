package booking

import (
	"time"

	"venuebook/internal/pkg/money"
)

type CreateBookingRequest struct {
	HallID        int64     `json:"hall_id" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	DurationHours int       `json:"duration" binding:"required"`
	Guests        int       `json:"guests" binding:"required"`
	Note          string    `json:"note"`
}

type CreateBookingResponse struct {
	ID         int64  `json:"booking_id"`
	BookingRef string `json:"booking_ref"`
}

// BookingDetails is the owner-facing view of a booking, hall metadata
// included.
type BookingDetails struct {
	ID         int64       `json:"id"`
	BookingRef string      `json:"booking_ref"`
	HallID     int64       `json:"hall_id"`
	HallName   string      `json:"hall_name"`
	HallCity   string      `json:"hall_city,omitempty"`
	HallImage  string      `json:"hall_image,omitempty"`
	StartTime  time.Time   `json:"start_time"`
	EndTime    time.Time   `json:"end_time"`
	Guests     int         `json:"guests"`
	Status     string      `json:"status"`
	Amount     money.Money `json:"amount"`
	Tax        money.Money `json:"tax"`
	ServiceFee money.Money `json:"service_fee"`
	Total      money.Money `json:"total"`
	Note       string      `json:"note,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

type BusySlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
