package catalog

import (
	"context"
	"testing"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockHallRepo struct {
	mock.Mock
}

func (m *mockHallRepo) Create(ctx context.Context, h *domain.Hall) error {
	args := m.Called(ctx, h)
	if args.Error(0) == nil {
		h.ID = 11
	}
	return args.Error(0)
}

func (m *mockHallRepo) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hall), args.Error(1)
}

func (m *mockHallRepo) List(ctx context.Context, limit, offset int) ([]domain.Hall, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Hall), args.Get(1).(int64), args.Error(2)
}

func (m *mockHallRepo) Update(ctx context.Context, h *domain.Hall) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *mockHallRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockHallRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func TestService_CreateHall_Success(t *testing.T) {
	repo := new(mockHallRepo)
	repo.On("ExistsByName", mock.Anything, "Royal Banquet Hall").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	hall, err := svc.CreateHall(context.Background(), CreateHallRequest{
		Name:         "Royal Banquet Hall",
		City:         "Bhopal",
		Capacity:     500,
		PricePerHour: "2000",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), hall.ID)
	assert.Equal(t, money.FromUnits(2000), hall.PricePerHour)
	repo.AssertExpectations(t)
}

func TestService_CreateHall_NameTaken(t *testing.T) {
	repo := new(mockHallRepo)
	repo.On("ExistsByName", mock.Anything, "Royal Banquet Hall").Return(true, nil)

	svc := NewService(repo)
	_, err := svc.CreateHall(context.Background(), CreateHallRequest{
		Name:         "Royal Banquet Hall",
		Capacity:     500,
		PricePerHour: "2000",
	})

	assert.ErrorIs(t, err, ErrNameTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestService_CreateHall_BadPrice(t *testing.T) {
	repo := new(mockHallRepo)
	repo.On("ExistsByName", mock.Anything, mock.Anything).Return(false, nil)

	svc := NewService(repo)
	for _, price := range []string{"abc", "-5", "0", "1.999"} {
		_, err := svc.CreateHall(context.Background(), CreateHallRequest{
			Name:         "Hall",
			Capacity:     10,
			PricePerHour: price,
		})
		assert.ErrorIs(t, err, errInvalidPrice, "price %q", price)
	}
	repo.AssertNotCalled(t, "Create")
}

func TestService_GetHall_NotFound(t *testing.T) {
	repo := new(mockHallRepo)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	_, err := svc.GetHall(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListHalls_ClampsPageSize(t *testing.T) {
	repo := new(mockHallRepo)
	repo.On("List", mock.Anything, defaultPageSize, 0).Return([]domain.Hall{}, int64(0), nil)

	svc := NewService(repo)
	out, err := svc.ListHalls(context.Background(), 10_000, -3)

	assert.NoError(t, err)
	assert.Equal(t, defaultPageSize, out.Limit)
	assert.Equal(t, 0, out.Offset)
	repo.AssertExpectations(t)
}

func TestService_UpdateHall_ChangesPrice(t *testing.T) {
	repo := new(mockHallRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Hall{
		ID:           3,
		Name:         "Star Convention Center",
		Capacity:     800,
		PricePerHour: money.FromUnits(3500),
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	price := "4200.50"
	hall, err := svc.UpdateHall(context.Background(), 3, UpdateHallRequest{PricePerHour: &price})

	assert.NoError(t, err)
	assert.Equal(t, money.Money(420050), hall.PricePerHour)
	assert.Equal(t, "Star Convention Center", hall.Name)
}

func TestService_DeleteHall_NotFound(t *testing.T) {
	repo := new(mockHallRepo)
	repo.On("Delete", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)

	svc := NewService(repo)
	assert.ErrorIs(t, svc.DeleteHall(context.Background(), 404), ErrNotFound)
}
