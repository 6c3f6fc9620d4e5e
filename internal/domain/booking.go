package domain

import (
	"time"

	"venuebook/internal/pkg/money"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// ActiveBookingStatuses are the statuses that occupy a hall's time slot.
// Cancelled bookings never conflict.
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed}

// Booking is a time-boxed claim on a hall over [StartTime, EndTime).
// The monetary breakdown is computed once at creation and never recomputed;
// Total == Amount + Tax + ServiceFee always holds.
type Booking struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"user_id" validate:"required"`
	HallID     int64         `json:"hall_id" validate:"required"`
	BookingRef string        `json:"booking_ref"`
	StartTime  time.Time     `json:"start_time" validate:"required"`
	EndTime    time.Time     `json:"end_time" validate:"required"`
	Guests     int           `json:"guests" validate:"required,gt=0"`
	Note       string        `json:"note,omitempty"`
	Amount     money.Money   `json:"amount"`
	Tax        money.Money   `json:"tax"`
	ServiceFee money.Money   `json:"service_fee"`
	Total      money.Money   `json:"total"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Hall *Hall `json:"hall,omitempty" gorm:"foreignKey:HallID"`
}
