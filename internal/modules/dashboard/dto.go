package dashboard

import (
	"time"

	"venuebook/internal/pkg/money"
)

type Summary struct {
	TotalBookings int         `json:"total_bookings"`
	TotalSpent    money.Money `json:"total_spent"`
	LastBooking   *BookingCard `json:"last_booking,omitempty"`
	NextBooking   *BookingCard `json:"next_booking,omitempty"`
	MostUsedHall  string       `json:"most_used_hall,omitempty"`
}

type BookingCard struct {
	ID         int64       `json:"id"`
	BookingRef string      `json:"booking_ref"`
	HallName   string      `json:"hall_name"`
	StartTime  time.Time   `json:"start_time"`
	EndTime    time.Time   `json:"end_time"`
	Status     string      `json:"status"`
	Total      money.Money `json:"total"`
}

// ChartPoint is one bucket of an aggregated chart. Label is a month key
// ("2024-06") or a hall name depending on the chart.
type ChartPoint struct {
	Label string      `json:"label"`
	Count int         `json:"count"`
	Total money.Money `json:"total"`
}
