package domain

import "time"

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required,max=150"`
	Category    string    `json:"category,omitempty" validate:"max=50"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	HallID      *int64    `json:"hall_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Hall *Hall `json:"hall,omitempty" gorm:"foreignKey:HallID"`
}
