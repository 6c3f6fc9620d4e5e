package contact

import (
	"context"
	"errors"
	"strings"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	messages MessageRepository
}

func NewService(messages MessageRepository) *Service {
	return &Service{messages: messages}
}

func (s *Service) Submit(ctx context.Context, req SubmitMessageRequest) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *Service) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx)
}

func (s *Service) Resolve(ctx context.Context, id int64) error {
	if err := s.messages.MarkResolved(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
