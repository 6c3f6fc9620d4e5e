package catalog

import (
	"context"

	"venuebook/internal/domain"
)

type HallRepository interface {
	Create(ctx context.Context, h *domain.Hall) error
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	List(ctx context.Context, limit, offset int) ([]domain.Hall, int64, error)
	Update(ctx context.Context, h *domain.Hall) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}
