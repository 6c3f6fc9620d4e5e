package dashboard

import (
	"context"

	"venuebook/internal/repository"
)

type BookingReader interface {
	ListByUserWithHalls(ctx context.Context, userID int64) ([]repository.UserBookingRow, error)
}
