package event

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	if args.Error(0) == nil {
		e.ID = 3
	}
	return args.Error(0)
}

func (m *mockEventRepo) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

type mockHallRepo struct {
	mock.Mock
}

func (m *mockHallRepo) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hall), args.Error(1)
}

func TestService_CreateEvent_Success(t *testing.T) {
	events := new(mockEventRepo)
	halls := new(mockHallRepo)
	hallID := int64(2)
	halls.On("GetByID", mock.Anything, hallID).Return(&domain.Hall{ID: hallID}, nil)
	events.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(events, halls)
	e, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		Title:  "Wedding Expo",
		Date:   time.Date(2024, 9, 14, 10, 0, 0, 0, time.UTC),
		HallID: &hallID,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), e.ID)
	events.AssertExpectations(t)
}

func TestService_CreateEvent_UnknownHall(t *testing.T) {
	events := new(mockEventRepo)
	halls := new(mockHallRepo)
	hallID := int64(99)
	halls.On("GetByID", mock.Anything, hallID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(events, halls)
	_, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		Title:  "Orphan Event",
		Date:   time.Now(),
		HallID: &hallID,
	})

	assert.ErrorIs(t, err, ErrHallNotFound)
	events.AssertNotCalled(t, "Create")
}

func TestService_ListEvents_DefaultsPage(t *testing.T) {
	events := new(mockEventRepo)
	events.On("List", mock.Anything, defaultPageSize, 0).Return([]domain.Event{}, nil)

	svc := NewService(events, new(mockHallRepo))
	_, err := svc.ListEvents(context.Background(), 0, -1)

	assert.NoError(t, err)
	events.AssertExpectations(t)
}
