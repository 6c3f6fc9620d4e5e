package repository

import (
	"context"
	"time"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type contactModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Subject   *string   `gorm:"column:subject"`
	Message   string    `gorm:"column:message"`
	Resolved  bool      `gorm:"column:resolved"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (contactModel) TableName() string { return "contact_messages" }

func toDomainContact(m contactModel) *domain.ContactMessage {
	msg := &domain.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		Resolved:  m.Resolved,
		CreatedAt: m.CreatedAt,
	}
	if m.Subject != nil {
		msg.Subject = *m.Subject
	}
	return msg
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	m := contactModel{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: nullable(msg.Subject),
		Message: msg.Message,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*msg = *toDomainContact(m)
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var rows []contactModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.ContactMessage, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainContact(m))
	}
	return out, nil
}

func (r *ContactRepository) MarkResolved(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&contactModel{}).
		Where("id = ?", id).
		Update("resolved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
