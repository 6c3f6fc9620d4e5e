package contact

import (
	"context"
	"testing"

	"venuebook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	if args.Error(0) == nil {
		msg.ID = 5
	}
	return args.Error(0)
}

func (m *mockMessageRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

func (m *mockMessageRepo) MarkResolved(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Submit_NormalizesEmail(t *testing.T) {
	repo := new(mockMessageRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	msg, err := svc.Submit(context.Background(), SubmitMessageRequest{
		Name:    "  Asha  ",
		Email:   " Asha@Example.COM ",
		Message: "Is the main hall free on Friday?",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), msg.ID)
	assert.Equal(t, "Asha", msg.Name)
	assert.Equal(t, "asha@example.com", msg.Email)
}

func TestService_Resolve_NotFound(t *testing.T) {
	repo := new(mockMessageRepo)
	repo.On("MarkResolved", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)

	svc := NewService(repo)
	assert.ErrorIs(t, svc.Resolve(context.Background(), 404), ErrNotFound)
}
