package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"
	"venuebook/internal/repository"

	"gorm.io/gorm"
)

// maxRefAttempts bounds reference regeneration when the store reports a
// duplicate booking_ref. With an 8-character random suffix a second
// collision in a row means something is badly wrong.
const maxRefAttempts = 3

type Service struct {
	bookings BookingRepository
	halls    HallRepository
	events   EventSink
}

func NewService(bookings BookingRepository, halls HallRepository, events EventSink) *Service {
	return &Service{
		bookings: bookings,
		halls:    halls,
		events:   events,
	}
}

// CreateBooking runs the whole reservation workflow: hall lookup,
// normalization, overlap check, pricing, reference generation and the
// atomic insert. Either the booking row lands complete or nothing is
// written.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	hall, err := s.halls.GetByID(ctx, req.HallID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}

	if req.DurationHours <= 0 || req.Guests <= 0 {
		return nil, ErrValidation
	}
	if req.Guests > hall.Capacity {
		return nil, ErrValidation
	}

	start := req.StartTime
	end := start.Add(time.Duration(req.DurationHours) * time.Hour)

	quote := PriceQuote(hall.PricePerHour, req.DurationHours)

	b := &domain.Booking{
		UserID:     userID,
		HallID:     hall.ID,
		StartTime:  start,
		EndTime:    end,
		Guests:     req.Guests,
		Note:       req.Note,
		Amount:     quote.Amount,
		Tax:        quote.Tax,
		ServiceFee: quote.ServiceFee,
		Total:      quote.Total,
		Status:     domain.BookingPending,
	}

	for attempt := 0; attempt < maxRefAttempts; attempt++ {
		ref, err := NewBookingRef()
		if err != nil {
			return nil, err
		}
		b.BookingRef = ref

		err = s.bookings.CreateIfAvailable(ctx, b)
		switch {
		case err == nil:
			if s.events != nil {
				s.events.BookingCreated(b)
			}
			return b, nil
		case errors.Is(err, repository.ErrSlotConflict):
			return nil, ErrSlotUnavailable
		case errors.Is(err, repository.ErrDuplicateRef):
			log.Printf("booking_ref collision ref=%s attempt=%d", ref, attempt+1)
			continue
		default:
			return nil, err
		}
	}
	return nil, errors.New("booking ref generation exhausted retries")
}

// CancelBooking cancels the caller's own booking. Cancelling twice fails
// with ErrAlreadyCancelled; someone else's booking is reported as not found
// rather than forbidden so existence does not leak.
func (s *Service) CancelBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotFound
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return nil, err
	}
	b.Status = domain.BookingCancelled

	if s.events != nil {
		s.events.BookingCancelled(b)
	}
	return b, nil
}

// GetBooking returns the caller's booking with hall details.
func (s *Service) GetBooking(ctx context.Context, bookingID, userID int64) (*BookingDetails, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotFound
	}

	d := &BookingDetails{
		ID:         b.ID,
		BookingRef: b.BookingRef,
		HallID:     b.HallID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Guests:     b.Guests,
		Status:     string(b.Status),
		Amount:     b.Amount,
		Tax:        b.Tax,
		ServiceFee: b.ServiceFee,
		Total:      b.Total,
		Note:       b.Note,
		CreatedAt:  b.CreatedAt,
	}

	if hall, err := s.halls.GetByID(ctx, b.HallID); err == nil {
		d.HallName = hall.Name
		d.HallCity = hall.City
		d.HallImage = hall.ImageURL
	}
	return d, nil
}

func (s *Service) ListMyBookings(ctx context.Context, userID int64) ([]BookingDetails, error) {
	rows, err := s.bookings.ListByUserWithHalls(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, bookingDetailsFromRow(r))
	}
	return out, nil
}

// HallBusySlots returns the occupied intervals of a hall so clients can
// render availability. Cancelled bookings do not occupy slots.
func (s *Service) HallBusySlots(ctx context.Context, hallID int64, from, to time.Time) ([]BusySlot, error) {
	if _, err := s.halls.GetByID(ctx, hallID); err != nil {
		if isRecordNotFound(err) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}

	rows, err := s.bookings.FindOverlapping(ctx, hallID, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]BusySlot, 0, len(rows))
	for _, b := range rows {
		out = append(out, BusySlot{Start: b.StartTime, End: b.EndTime})
	}
	return out, nil
}

func bookingDetailsFromRow(r repository.UserBookingRow) BookingDetails {
	return BookingDetails{
		ID:         r.ID,
		BookingRef: r.BookingRef,
		HallID:     r.HallID,
		HallName:   r.HallName,
		HallCity:   r.HallCity,
		HallImage:  r.HallImage,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Guests:     r.Guests,
		Status:     r.Status,
		Total:      money.Money(r.Total),
		CreatedAt:  r.CreatedAt,
	}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
