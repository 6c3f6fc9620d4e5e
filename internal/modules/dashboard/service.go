package dashboard

import (
	"context"
	"sort"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"
	"venuebook/internal/repository"
)

// Service aggregates a user's booking history in application code. The
// queries stay portable across postgres and sqlite; the row counts involved
// are small enough that the database gains nothing from doing the grouping.
type Service struct {
	bookings BookingReader
	now      func() time.Time
}

func NewService(bookings BookingReader) *Service {
	return &Service{bookings: bookings, now: time.Now}
}

func (s *Service) Summary(ctx context.Context, userID int64) (*Summary, error) {
	rows, err := s.bookings.ListByUserWithHalls(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := &Summary{}
	hallCounts := make(map[string]int)

	var last, next *repository.UserBookingRow
	for i := range rows {
		r := rows[i]
		if r.Status == string(domain.BookingCancelled) {
			continue
		}
		out.TotalBookings++
		out.TotalSpent = out.TotalSpent.Add(money.Money(r.Total))
		hallCounts[r.HallName]++

		if r.StartTime.Before(now) {
			if last == nil || r.StartTime.After(last.StartTime) {
				last = &rows[i]
			}
		} else {
			if next == nil || r.StartTime.Before(next.StartTime) {
				next = &rows[i]
			}
		}
	}

	if last != nil {
		out.LastBooking = toCard(*last)
	}
	if next != nil {
		out.NextBooking = toCard(*next)
	}

	best := 0
	for name, cnt := range hallCounts {
		if cnt > best || (cnt == best && name < out.MostUsedHall) {
			best = cnt
			out.MostUsedHall = name
		}
	}
	return out, nil
}

// MonthlyBookings buckets the user's non-cancelled bookings by start month,
// oldest first.
func (s *Service) MonthlyBookings(ctx context.Context, userID int64) ([]ChartPoint, error) {
	rows, err := s.bookings.ListByUserWithHalls(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*ChartPoint)
	for _, r := range rows {
		if r.Status == string(domain.BookingCancelled) {
			continue
		}
		key := r.StartTime.Format("2006-01")
		p, ok := buckets[key]
		if !ok {
			p = &ChartPoint{Label: key}
			buckets[key] = p
		}
		p.Count++
		p.Total = p.Total.Add(money.Money(r.Total))
	}
	return sortedPoints(buckets), nil
}

// HallUsage counts the user's non-cancelled bookings per hall, most used
// first.
func (s *Service) HallUsage(ctx context.Context, userID int64) ([]ChartPoint, error) {
	rows, err := s.bookings.ListByUserWithHalls(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*ChartPoint)
	for _, r := range rows {
		if r.Status == string(domain.BookingCancelled) {
			continue
		}
		p, ok := buckets[r.HallName]
		if !ok {
			p = &ChartPoint{Label: r.HallName}
			buckets[r.HallName] = p
		}
		p.Count++
		p.Total = p.Total.Add(money.Money(r.Total))
	}

	out := sortedPoints(buckets)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

// Spending buckets the user's confirmed spend by month, oldest first.
func (s *Service) Spending(ctx context.Context, userID int64) ([]ChartPoint, error) {
	rows, err := s.bookings.ListByUserWithHalls(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*ChartPoint)
	for _, r := range rows {
		if r.Status != string(domain.BookingConfirmed) {
			continue
		}
		key := r.StartTime.Format("2006-01")
		p, ok := buckets[key]
		if !ok {
			p = &ChartPoint{Label: key}
			buckets[key] = p
		}
		p.Count++
		p.Total = p.Total.Add(money.Money(r.Total))
	}
	return sortedPoints(buckets), nil
}

func sortedPoints(buckets map[string]*ChartPoint) []ChartPoint {
	out := make([]ChartPoint, 0, len(buckets))
	for _, p := range buckets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func toCard(r repository.UserBookingRow) *BookingCard {
	return &BookingCard{
		ID:         r.ID,
		BookingRef: r.BookingRef,
		HallName:   r.HallName,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Status:     r.Status,
		Total:      money.Money(r.Total),
	}
}
