package event

import (
	"context"
	"errors"
	"strings"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	events EventRepository
	halls  HallRepository
}

func NewService(events EventRepository, halls HallRepository) *Service {
	return &Service{events: events, halls: halls}
}

func (s *Service) ListEvents(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.events.List(ctx, limit, offset)
}

func (s *Service) CreateEvent(ctx context.Context, req CreateEventRequest) (*domain.Event, error) {
	if req.HallID != nil {
		if _, err := s.halls.GetByID(ctx, *req.HallID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrHallNotFound
			}
			return nil, err
		}
	}

	e := &domain.Event{
		Title:       strings.TrimSpace(req.Title),
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
		Date:        req.Date,
		HallID:      req.HallID,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
