package admin

import (
	"time"

	"venuebook/internal/pkg/money"
)

type StatsResponse struct {
	TotalUsers       int64       `json:"total_users"`
	TotalHalls       int64       `json:"total_halls"`
	TotalBookings    int64       `json:"total_bookings"`
	ConfirmedRevenue money.Money `json:"confirmed_revenue"`
}

type BookingRow struct {
	ID        int64       `json:"id"`
	UserName  string      `json:"user_name"`
	HallName  string      `json:"hall_name"`
	Guests    int         `json:"guests"`
	StartTime time.Time   `json:"start_time"`
	Status    string      `json:"status"`
	Total     money.Money `json:"total"`
}

type ModerateBookingRequest struct {
	Action string `json:"action" validate:"required,oneof=confirm cancel"`
}

type UserRow struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
