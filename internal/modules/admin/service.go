package admin

import (
	"context"
	"errors"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"

	"gorm.io/gorm"
)

const defaultListLimit = 100

type Service struct {
	bookings BookingRepository
	users    UserRepository
	halls    HallCounter
	events   BookingEventSink
}

// BookingEventSink mirrors the booking module sink so moderation decisions
// also reach the live feed.
type BookingEventSink interface {
	BookingCancelled(b *domain.Booking)
}

func NewService(bookings BookingRepository, users UserRepository, halls HallCounter, events BookingEventSink) *Service {
	return &Service{bookings: bookings, users: users, halls: halls, events: events}
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	halls, err := s.halls.Count(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.bookings.ConfirmedRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsResponse{
		TotalUsers:       users,
		TotalHalls:       halls,
		TotalBookings:    bookings,
		ConfirmedRevenue: revenue,
	}, nil
}

func (s *Service) ListBookings(ctx context.Context, limit int) ([]BookingRow, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultListLimit
	}
	rows, err := s.bookings.ListWithNames(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]BookingRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingRow{
			ID:        r.ID,
			UserName:  r.UserName,
			HallName:  r.HallName,
			Guests:    r.Guests,
			StartTime: r.StartTime,
			Status:    r.Status,
			Total:     money.Money(r.Total),
		})
	}
	return out, nil
}

// ModerateBooking applies an admin decision. Confirming a cancelled booking
// is allowed; its slot was already released so the overlap check is the
// caller's responsibility in that edge case.
func (s *Service) ModerateBooking(ctx context.Context, bookingID int64, action string) (*domain.Booking, error) {
	var status domain.BookingStatus
	switch action {
	case "confirm":
		status = domain.BookingConfirmed
	case "cancel":
		status = domain.BookingCancelled
	default:
		return nil, ErrInvalidAction
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.Status == status {
		return b, nil
	}
	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	b.Status = status

	if status == domain.BookingCancelled && s.events != nil {
		s.events.BookingCancelled(b)
	}
	return b, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]UserRow, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserRow, 0, len(users))
	for _, u := range users {
		out = append(out, UserRow{
			ID:        u.ID,
			FullName:  u.FullName,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin(),
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}
