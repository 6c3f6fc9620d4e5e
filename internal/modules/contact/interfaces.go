package contact

import (
	"context"

	"venuebook/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkResolved(ctx context.Context, id int64) error
}
