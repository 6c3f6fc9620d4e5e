package admin

import (
	"context"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"
	"venuebook/internal/repository"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListWithNames(ctx context.Context, limit int) ([]repository.AdminBookingRow, error)
	CountAll(ctx context.Context) (int64, error)
	ConfirmedRevenue(ctx context.Context) (money.Money, error)
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type HallCounter interface {
	Count(ctx context.Context) (int64, error)
}
