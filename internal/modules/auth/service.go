package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"venuebook/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users      UserRepository
	jwt        jwtService
	refreshTTL time.Duration
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type refreshTokenRow struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	UserID    int64      `gorm:"column:user_id;index"`
	TokenHash string     `gorm:"column:token_hash;uniqueIndex"`
	JTI       string     `gorm:"column:jti"`
	ExpiresAt time.Time  `gorm:"column:expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (refreshTokenRow) TableName() string { return "refresh_tokens" }

func NewService(users UserRepository, jwt jwtService, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		jwt:        jwt,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshRaw, refreshHash, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}

	row := refreshTokenRow{
		UserID:    user.ID,
		TokenHash: refreshHash,
		JTI:       uuid.NewString(),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.users.DB().WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: accessToken, RefreshToken: refreshRaw}, nil
}

// Refresh rotates the refresh token: the presented token is revoked inside
// the same transaction that records its replacement.
func (s *Service) Refresh(ctx context.Context, refreshRaw string) (*LoginResult, error) {
	now := time.Now()
	hash := hashToken(refreshRaw)
	var result *LoginResult

	err := s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current refreshTokenRow
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.Where("token_hash = ?", hash).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidRefreshToken
			}
			return err
		}
		if current.RevokedAt != nil || !current.ExpiresAt.After(now) {
			return ErrInvalidRefreshToken
		}

		var um struct {
			ID   int64  `gorm:"column:id"`
			Role string `gorm:"column:role"`
		}
		if err := tx.Table("users").Where("id = ?", current.UserID).Take(&um).Error; err != nil {
			return err
		}

		accessToken, err := s.jwt.GenerateToken(um.ID, um.Role)
		if err != nil {
			return err
		}
		newRaw, newHash, err := generateOpaqueToken()
		if err != nil {
			return err
		}

		if err := tx.Model(&refreshTokenRow{}).Where("id = ?", current.ID).
			Update("revoked_at", now).Error; err != nil {
			return err
		}
		if err := tx.Create(&refreshTokenRow{
			UserID:    current.UserID,
			TokenHash: newHash,
			JTI:       uuid.NewString(),
			ExpiresAt: now.Add(s.refreshTTL),
		}).Error; err != nil {
			return err
		}

		result = &LoginResult{AccessToken: accessToken, RefreshToken: newRaw}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Logout revokes the presented refresh token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, refreshRaw string) error {
	hash := hashToken(refreshRaw)
	return s.users.DB().WithContext(ctx).
		Model(&refreshTokenRow{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", time.Now()).Error
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func generateOpaqueToken() (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, hashToken(raw), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
