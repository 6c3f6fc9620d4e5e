package repository

import (
	"context"
	"errors"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage-level sentinels for the reservation engine. The engine maps them
// onto its own error taxonomy.
var (
	// ErrSlotConflict means an active booking already overlaps the
	// requested interval.
	ErrSlotConflict = errors.New("slot conflict")
	// ErrDuplicateRef means the booking_ref uniqueness constraint fired;
	// the caller should retry with a fresh reference.
	ErrDuplicateRef = errors.New("duplicate booking ref")
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	UserID     int64     `gorm:"column:user_id;index"`
	HallID     int64     `gorm:"column:hall_id;index"`
	BookingRef string    `gorm:"column:booking_ref;uniqueIndex:idx_bookings_booking_ref"`
	StartTime  time.Time `gorm:"column:start_time"`
	EndTime    time.Time `gorm:"column:end_time"`
	Guests     int       `gorm:"column:guests"`
	Note       *string   `gorm:"column:note"`
	Amount     int64     `gorm:"column:amount"`      // minor units
	Tax        int64     `gorm:"column:tax"`         // minor units
	ServiceFee int64     `gorm:"column:service_fee"` // minor units
	Total      int64     `gorm:"column:total"`       // minor units
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var note string
	if m.Note != nil {
		note = *m.Note
	}
	return &domain.Booking{
		ID:         m.ID,
		UserID:     m.UserID,
		HallID:     m.HallID,
		BookingRef: m.BookingRef,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		Guests:     m.Guests,
		Note:       note,
		Amount:     money.Money(m.Amount),
		Tax:        money.Money(m.Tax),
		ServiceFee: money.Money(m.ServiceFee),
		Total:      money.Money(m.Total),
		Status:     domain.BookingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		UserID:     b.UserID,
		HallID:     b.HallID,
		BookingRef: b.BookingRef,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Guests:     b.Guests,
		Note:       nullable(b.Note),
		Amount:     b.Amount.MinorUnits(),
		Tax:        b.Tax.MinorUnits(),
		ServiceFee: b.ServiceFee.MinorUnits(),
		Total:      b.Total.MinorUnits(),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func lockingForUpdate() clause.Expression {
	return clause.Locking{Strength: "UPDATE"}
}

// CreateIfAvailable inserts b iff no pending or confirmed booking on the same
// hall overlaps [b.StartTime, b.EndTime). The overlap check and the insert
// run inside one transaction with the hall row locked, so two concurrent
// writers for the same hall serialize at the store rather than both passing
// the check. Touching endpoints do not conflict (half-open intervals).
func (r *BookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			var hallID int64
			err := tx.Clauses(lockingForUpdate()).
				Table("halls").
				Select("id").
				Where("id = ?", b.HallID).
				Scan(&hallID).Error
			if err != nil {
				return err
			}
		}

		var cnt int64
		err := tx.Raw(`
SELECT COUNT(1)
FROM bookings
WHERE hall_id = ?
  AND status IN ('pending', 'confirmed')
  AND start_time < ?
  AND end_time > ?
`, b.HallID, b.EndTime, b.StartTime).Scan(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotConflict
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err, "idx_bookings_booking_ref") {
				return ErrDuplicateRef
			}
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// FindOverlapping returns active bookings on the hall intersecting
// [start, end). Read-only; used for availability listings, not for the
// creation race (CreateIfAvailable owns that).
func (r *BookingRepository) FindOverlapping(ctx context.Context, hallID int64, start, end time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("hall_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			hallID, activeStatuses(), end, start).
		Order("start_time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	res := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

func (r *BookingRepository) ListByHall(ctx context.Context, hallID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("hall_id = ?", hallID).
		Order("start_time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

// AdminBookingRow is a booking joined with its user and hall names for the
// admin listing.
type AdminBookingRow struct {
	ID        int64     `gorm:"column:id"`
	UserName  string    `gorm:"column:user_name"`
	HallName  string    `gorm:"column:hall_name"`
	Guests    int       `gorm:"column:guests"`
	StartTime time.Time `gorm:"column:start_time"`
	Status    string    `gorm:"column:status"`
	Total     int64     `gorm:"column:total"`
}

func (r *BookingRepository) ListWithNames(ctx context.Context, limit int) ([]AdminBookingRow, error) {
	var rows []AdminBookingRow
	err := r.db.WithContext(ctx).Raw(`
SELECT b.id, u.full_name AS user_name, h.name AS hall_name,
       b.guests, b.start_time, b.status, b.total
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN halls h ON h.id = b.hall_id
ORDER BY b.created_at DESC
LIMIT ?
`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UserBookingRow is a booking joined with hall details for the owner's
// listings and dashboard.
type UserBookingRow struct {
	ID         int64     `gorm:"column:id"`
	BookingRef string    `gorm:"column:booking_ref"`
	HallID     int64     `gorm:"column:hall_id"`
	HallName   string    `gorm:"column:hall_name"`
	HallCity   string    `gorm:"column:hall_city"`
	HallImage  string    `gorm:"column:hall_image"`
	StartTime  time.Time `gorm:"column:start_time"`
	EndTime    time.Time `gorm:"column:end_time"`
	Guests     int       `gorm:"column:guests"`
	Status     string    `gorm:"column:status"`
	Total      int64     `gorm:"column:total"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (r *BookingRepository) ListByUserWithHalls(ctx context.Context, userID int64) ([]UserBookingRow, error) {
	var rows []UserBookingRow
	err := r.db.WithContext(ctx).Raw(`
SELECT b.id, b.booking_ref, b.hall_id, h.name AS hall_name,
       COALESCE(h.city, '') AS hall_city, COALESCE(h.image_url, '') AS hall_image,
       b.start_time, b.end_time, b.guests, b.status, b.total, b.created_at
FROM bookings b
JOIN halls h ON h.id = b.hall_id
WHERE b.user_id = ?
ORDER BY b.start_time DESC
`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Table("bookings").Count(&cnt).Error
	return cnt, err
}

// ConfirmedRevenue sums the totals of confirmed bookings, in minor units.
func (r *BookingRepository) ConfirmedRevenue(ctx context.Context) (money.Money, error) {
	var sum int64
	err := r.db.WithContext(ctx).Raw(`
SELECT COALESCE(SUM(total), 0) FROM bookings WHERE status = 'confirmed'
`).Scan(&sum).Error
	return money.Money(sum), err
}

func activeStatuses() []string {
	out := make([]string, 0, len(domain.ActiveBookingStatuses))
	for _, s := range domain.ActiveBookingStatuses {
		out = append(out, string(s))
	}
	return out
}

func toDomainBookings(rows []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
