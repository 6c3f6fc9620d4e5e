package auth

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormsqlite "gorm.io/driver/sqlite"

	_ "modernc.org/sqlite"
)

type mockUserRepo struct {
	mock.Mock
	db *gorm.DB
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 7
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) DB() *gorm.DB { return m.db }

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

type userRow struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Role string `gorm:"column:role"`
}

func (userRow) TableName() string { return "users" }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        "file::memory:?cache=shared&_pragma=foreign_keys(1)",
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&refreshTokenRow{}, &userRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM refresh_tokens")
		db.Exec("DELETE FROM users")
	})
	return db
}

func TestService_Signup_Success(t *testing.T) {
	users := &mockUserRepo{}
	users.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(users, new(mockJWT), time.Hour)
	u, err := svc.Signup(context.Background(), SignupRequest{
		FullName: "New User",
		Email:    "new@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.Empty(t, u.PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Signup_EmailTaken(t *testing.T) {
	users := &mockUserRepo{}
	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewService(users, new(mockJWT), time.Hour)
	_, err := svc.Signup(context.Background(), SignupRequest{
		FullName: "Someone",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create")
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users := &mockUserRepo{db: testDB(t)}
	users.On("GetByEmail", mock.Anything, "known@example.com").Return(&domain.User{
		ID:           42,
		Email:        "known@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)
	jwtSvc := new(mockJWT)
	jwtSvc.On("GenerateToken", int64(42), "user").Return("access-token", nil)

	svc := NewService(users, jwtSvc, time.Hour)
	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "known@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "access-token", res.AccessToken)
	assert.Len(t, res.RefreshToken, 64)
	assert.Empty(t, res.User.PasswordHash)

	var count int64
	users.db.Model(&refreshTokenRow{}).Where("user_id = ?", 42).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users := &mockUserRepo{}
	users.On("GetByEmail", mock.Anything, "known@example.com").Return(&domain.User{
		ID:           42,
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(users, new(mockJWT), time.Hour)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "known@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := &mockUserRepo{}
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, new(mockJWT), time.Hour)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Refresh_RotatesToken(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users := &mockUserRepo{db: testDB(t)}
	users.On("GetByEmail", mock.Anything, "known@example.com").Return(&domain.User{
		ID:           42,
		Email:        "known@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)
	users.db.Create(&userRow{ID: 42, Role: "user"})

	jwtSvc := new(mockJWT)
	jwtSvc.On("GenerateToken", int64(42), "user").Return("access-token", nil)

	svc := NewService(users, jwtSvc, time.Hour)
	login, err := svc.Login(context.Background(), LoginRequest{
		Email:    "known@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), login.RefreshToken)
	assert.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	// The presented token is spent after rotation.
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// The replacement still works.
	_, err = svc.Refresh(context.Background(), rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestService_Refresh_UnknownToken(t *testing.T) {
	users := &mockUserRepo{db: testDB(t)}
	svc := NewService(users, new(mockJWT), time.Hour)

	_, err := svc.Refresh(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestService_Logout_RevokesToken(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users := &mockUserRepo{db: testDB(t)}
	users.On("GetByEmail", mock.Anything, "known@example.com").Return(&domain.User{
		ID:           42,
		Email:        "known@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)
	users.db.Create(&userRow{ID: 42, Role: "user"})

	jwtSvc := new(mockJWT)
	jwtSvc.On("GenerateToken", int64(42), "user").Return("access-token", nil)

	svc := NewService(users, jwtSvc, time.Hour)
	login, err := svc.Login(context.Background(), LoginRequest{
		Email:    "known@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
