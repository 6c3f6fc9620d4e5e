package domain

import "time"

type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,max=120"`
	Email     string    `json:"email" validate:"required,email,max=120"`
	Subject   string    `json:"subject,omitempty" validate:"max=200"`
	Message   string    `json:"message" validate:"required"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
}
