package event

import (
	"context"

	"venuebook/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	List(ctx context.Context, limit, offset int) ([]domain.Event, error)
}

type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}
