package auth

import (
	"context"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

// UserRepository is the user store as seen by the auth service. DB is
// exposed for the refresh-token table, which is private to this module.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DB() *gorm.DB
}
