package booking

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"
	"venuebook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) FindOverlapping(ctx context.Context, hallID int64, start, end time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, hallID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByUserWithHalls(ctx context.Context, userID int64) ([]repository.UserBookingRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.UserBookingRow), args.Error(1)
}

func (m *MockBookingRepository) ListByHall(ctx context.Context, hallID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, hallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockHallRepository struct {
	mock.Mock
}

func (m *MockHallRepository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hall), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) BookingCreated(b *domain.Booking)   { m.Called(b) }
func (m *MockEventSink) BookingCancelled(b *domain.Booking) { m.Called(b) }

func testHall() *domain.Hall {
	return &domain.Hall{
		ID:           1,
		Name:         "Royal Banquet Hall",
		Capacity:     300,
		PricePerHour: money.FromUnits(2000),
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockHalls := new(MockHallRepository)
	mockEvents := new(MockEventSink)

	mockHalls.On("GetByID", mock.Anything, int64(1)).Return(testHall(), nil)
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("BookingCreated", mock.Anything).Return()

	service := NewService(mockBookings, mockHalls, mockEvents)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	b, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		HallID:        1,
		StartTime:     start,
		DurationHours: 3,
		Guests:        10,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, int64(42), b.UserID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, start.Add(3*time.Hour), b.EndTime)
	assert.Equal(t, money.FromUnits(6000), b.Amount)
	assert.Equal(t, money.FromUnits(1080), b.Tax)
	assert.Equal(t, money.FromUnits(300), b.ServiceFee)
	assert.Equal(t, money.FromUnits(7380), b.Total)
	assert.Regexp(t, `^BK-[A-Z0-9]{8}$`, b.BookingRef)
	mockEvents.AssertCalled(t, "BookingCreated", mock.Anything)
}

func TestService_CreateBooking_HallNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockHalls := new(MockHallRepository)

	mockHalls.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockHalls, nil)

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		HallID:        77,
		StartTime:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		DurationHours: 2,
		Guests:        5,
	})
	assert.ErrorIs(t, err, ErrHallNotFound)
	mockBookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_InvalidInput(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockHalls := new(MockHallRepository)
	mockHalls.On("GetByID", mock.Anything, int64(1)).Return(testHall(), nil)

	service := NewService(mockBookings, mockHalls, nil)
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		duration int
		guests   int
	}{
		{"zero duration", 0, 10},
		{"negative duration", -2, 10},
		{"zero guests", 3, 0},
		{"guests above capacity", 3, 301},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
				HallID:        1,
				StartTime:     start,
				DurationHours: tc.duration,
				Guests:        tc.guests,
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	mockBookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_SlotUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockHalls := new(MockHallRepository)

	mockHalls.On("GetByID", mock.Anything, int64(1)).Return(testHall(), nil)
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(repository.ErrSlotConflict)

	service := NewService(mockBookings, mockHalls, nil)

	_, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		HallID:        1,
		StartTime:     time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		DurationHours: 1,
		Guests:        10,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	mockBookings.AssertNumberOfCalls(t, "CreateIfAvailable", 1)
}

func TestService_CreateBooking_RetriesOnRefCollision(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockHalls := new(MockHallRepository)

	mockHalls.On("GetByID", mock.Anything, int64(1)).Return(testHall(), nil)
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateRef).Once()
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).
		Return(nil).Once()

	service := NewService(mockBookings, mockHalls, nil)

	b, err := service.CreateBooking(context.Background(), 42, CreateBookingRequest{
		HallID:        1,
		StartTime:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		DurationHours: 2,
		Guests:        10,
	})
	assert.NoError(t, err)
	assert.Regexp(t, `^BK-[A-Z0-9]{8}$`, b.BookingRef)
	mockBookings.AssertNumberOfCalls(t, "CreateIfAvailable", 2)
}

func TestService_CancelBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventSink)

	existing := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(5), domain.BookingCancelled).Return(nil)
	mockEvents.On("BookingCancelled", mock.Anything).Return()

	service := NewService(mockBookings, new(MockHallRepository), mockEvents)

	b, err := service.CancelBooking(context.Background(), 5, 42)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_CancelBooking_AlreadyCancelled(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	existing := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingCancelled}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

	service := NewService(mockBookings, new(MockHallRepository), nil)

	_, err := service.CancelBooking(context.Background(), 5, 42)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CancelBooking_NotOwner(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	existing := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

	service := NewService(mockBookings, new(MockHallRepository), nil)

	// a different user gets not-found, not forbidden
	_, err := service.CancelBooking(context.Background(), 5, 43)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CancelBooking_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(12)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, new(MockHallRepository), nil)

	_, err := service.CancelBooking(context.Background(), 12, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_HallBusySlots(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockHalls := new(MockHallRepository)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	busy := []domain.Booking{
		{StartTime: from.Add(10 * time.Hour), EndTime: from.Add(13 * time.Hour)},
	}

	mockHalls.On("GetByID", mock.Anything, int64(1)).Return(testHall(), nil)
	mockBookings.On("FindOverlapping", mock.Anything, int64(1), from, to).Return(busy, nil)

	service := NewService(mockBookings, mockHalls, nil)

	slots, err := service.HallBusySlots(context.Background(), 1, from, to)
	assert.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.Equal(t, from.Add(10*time.Hour), slots[0].Start)
	assert.Equal(t, from.Add(13*time.Hour), slots[0].End)
}
