package repository

import (
	"context"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"

	"gorm.io/gorm"
)

type HallRepository struct {
	db *gorm.DB
}

func NewHallRepository(db *gorm.DB) *HallRepository {
	return &HallRepository{db: db}
}

type hallModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	City         *string   `gorm:"column:city"`
	State        *string   `gorm:"column:state"`
	Location     *string   `gorm:"column:location"`
	Latitude     *float64  `gorm:"column:latitude"`
	Longitude    *float64  `gorm:"column:longitude"`
	Capacity     int       `gorm:"column:capacity"`
	PricePerHour int64     `gorm:"column:price_per_hour"` // minor units
	Description  *string   `gorm:"column:description"`
	ImageURL     *string   `gorm:"column:image_url"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (hallModel) TableName() string { return "halls" }

func toDomainHall(m hallModel) *domain.Hall {
	h := &domain.Hall{
		ID:           m.ID,
		Name:         m.Name,
		Capacity:     m.Capacity,
		PricePerHour: money.Money(m.PricePerHour),
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.City != nil {
		h.City = *m.City
	}
	if m.State != nil {
		h.State = *m.State
	}
	if m.Location != nil {
		h.Location = *m.Location
	}
	if m.Description != nil {
		h.Description = *m.Description
	}
	if m.ImageURL != nil {
		h.ImageURL = *m.ImageURL
	}
	return h
}

func toHallModel(h *domain.Hall) hallModel {
	m := hallModel{
		ID:           h.ID,
		Name:         h.Name,
		Capacity:     h.Capacity,
		PricePerHour: h.PricePerHour.MinorUnits(),
		Latitude:     h.Latitude,
		Longitude:    h.Longitude,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
	m.City = nullable(h.City)
	m.State = nullable(h.State)
	m.Location = nullable(h.Location)
	m.Description = nullable(h.Description)
	m.ImageURL = nullable(h.ImageURL)
	return m
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (r *HallRepository) Create(ctx context.Context, h *domain.Hall) error {
	m := toHallModel(h)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*h = *toDomainHall(m)
	return nil
}

func (r *HallRepository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	var m hallModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainHall(m), nil
}

func (r *HallRepository) List(ctx context.Context, limit, offset int) ([]domain.Hall, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Table("halls").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []hallModel
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Hall, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainHall(m))
	}
	return out, total, nil
}

func (r *HallRepository) Update(ctx context.Context, h *domain.Hall) error {
	m := toHallModel(h)
	return r.db.WithContext(ctx).Save(&m).Error
}

// Delete removes the hall together with its bookings.
func (r *HallRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM bookings WHERE hall_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&hallModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *HallRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Table("halls").Count(&cnt).Error
	return cnt, err
}

func (r *HallRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Table("halls").Where("name = ?", name).Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
