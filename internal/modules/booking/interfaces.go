package booking

import (
	"context"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/repository"
)

// BookingRepository is the reservation store as seen by the engine.
type BookingRepository interface {
	// CreateIfAvailable atomically checks for overlap and inserts; returns
	// repository.ErrSlotConflict or repository.ErrDuplicateRef.
	CreateIfAvailable(ctx context.Context, b *domain.Booking) error
	FindOverlapping(ctx context.Context, hallID int64, start, end time.Time) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListByUserWithHalls(ctx context.Context, userID int64) ([]repository.UserBookingRow, error)
	ListByHall(ctx context.Context, hallID int64) ([]domain.Booking, error)
}

// HallRepository is the hall store collaborator.
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// EventSink receives booking lifecycle events. Best effort: failures never
// affect the booking operation itself.
type EventSink interface {
	BookingCreated(b *domain.Booking)
	BookingCancelled(b *domain.Booking)
}
