package repository

import (
	"context"
	"time"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Category    *string   `gorm:"column:category"`
	Description *string   `gorm:"column:description"`
	Date        time.Time `gorm:"column:date"`
	HallID      *int64    `gorm:"column:hall_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (eventModel) TableName() string { return "events" }

func toDomainEvent(m eventModel) *domain.Event {
	e := &domain.Event{
		ID:        m.ID,
		Title:     m.Title,
		Date:      m.Date,
		HallID:    m.HallID,
		CreatedAt: m.CreatedAt,
	}
	if m.Category != nil {
		e.Category = *m.Category
	}
	if m.Description != nil {
		e.Description = *m.Description
	}
	return e
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := eventModel{
		Title:       e.Title,
		Category:    nullable(e.Category),
		Description: nullable(e.Description),
		Date:        e.Date,
		HallID:      e.HallID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*e = *toDomainEvent(m)
	return nil
}

func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	var rows []eventModel
	err := r.db.WithContext(ctx).
		Order("date").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvent(m))
	}
	return out, nil
}
