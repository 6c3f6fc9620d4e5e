package catalog

import (
	"venuebook/internal/domain"
)

type CreateHallRequest struct {
	Name         string   `json:"name" validate:"required,max=150"`
	City         string   `json:"city" validate:"max=100"`
	State        string   `json:"state" validate:"max=100"`
	Location     string   `json:"location" validate:"max=250"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Capacity     int      `json:"capacity" validate:"required,gt=0"`
	PricePerHour string   `json:"price_per_hour" validate:"required"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url" validate:"omitempty,url"`
}

type UpdateHallRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=150"`
	City         *string  `json:"city" validate:"omitempty,max=100"`
	State        *string  `json:"state" validate:"omitempty,max=100"`
	Location     *string  `json:"location" validate:"omitempty,max=250"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Capacity     *int     `json:"capacity" validate:"omitempty,gt=0"`
	PricePerHour *string  `json:"price_per_hour"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"image_url" validate:"omitempty,url"`
}

type HallListResponse struct {
	Halls  []domain.Hall `json:"halls"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
