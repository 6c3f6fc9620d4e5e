package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	halls HallRepository
}

func NewService(halls HallRepository) *Service {
	return &Service{halls: halls}
}

func (s *Service) ListHalls(ctx context.Context, limit, offset int) (*HallListResponse, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	halls, total, err := s.halls.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &HallListResponse{Halls: halls, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *Service) GetHall(ctx context.Context, id int64) (*domain.Hall, error) {
	h, err := s.halls.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) CreateHall(ctx context.Context, req CreateHallRequest) (*domain.Hall, error) {
	name := strings.TrimSpace(req.Name)
	taken, err := s.halls.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	price, err := money.Parse(req.PricePerHour)
	if err != nil || price <= 0 {
		return nil, fmt.Errorf("%w: price_per_hour", errInvalidPrice)
	}

	hall := &domain.Hall{
		Name:         name,
		City:         strings.TrimSpace(req.City),
		State:        strings.TrimSpace(req.State),
		Location:     strings.TrimSpace(req.Location),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Capacity:     req.Capacity,
		PricePerHour: price,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
	}
	if err := s.halls.Create(ctx, hall); err != nil {
		return nil, err
	}
	return hall, nil
}

func (s *Service) UpdateHall(ctx context.Context, id int64, req UpdateHallRequest) (*domain.Hall, error) {
	hall, err := s.GetHall(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != hall.Name {
			taken, err := s.halls.ExistsByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrNameTaken
			}
			hall.Name = name
		}
	}
	if req.City != nil {
		hall.City = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		hall.State = strings.TrimSpace(*req.State)
	}
	if req.Location != nil {
		hall.Location = strings.TrimSpace(*req.Location)
	}
	if req.Latitude != nil {
		hall.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		hall.Longitude = req.Longitude
	}
	if req.Capacity != nil {
		hall.Capacity = *req.Capacity
	}
	if req.PricePerHour != nil {
		price, err := money.Parse(*req.PricePerHour)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("%w: price_per_hour", errInvalidPrice)
		}
		hall.PricePerHour = price
	}
	if req.Description != nil {
		hall.Description = *req.Description
	}
	if req.ImageURL != nil {
		hall.ImageURL = *req.ImageURL
	}

	if err := s.halls.Update(ctx, hall); err != nil {
		return nil, err
	}
	return hall, nil
}

func (s *Service) DeleteHall(ctx context.Context, id int64) error {
	if err := s.halls.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
