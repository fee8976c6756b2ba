package request

import (
	"github.com/google/uuid"
)

type CreateCarRequest struct {
	Name              string    `json:"name" binding:"required"`
	PlateNumber       string    `json:"plate_number" binding:"required"`
	Status            string    `json:"status" binding:"required"`
	PricePerDay       int64     `json:"price_per_day" binding:"required,min=0"`
	PassengerCapacity int       `json:"passenger_capacity" binding:"required,min=1"`
	Description       string    `json:"description"`
	Images            []string  `json:"images"`
	Features          []string  `json:"features"`
	BrandID           uuid.UUID `json:"brand_id" binding:"required"`
}

// UpdateCarRequest carries only the fields the caller wants to change.
type UpdateCarRequest struct {
	Name              *string    `json:"name,omitempty"`
	PlateNumber       *string    `json:"plate_number,omitempty"`
	Status            *string    `json:"status,omitempty"`
	PricePerDay       *int64     `json:"price_per_day,omitempty"`
	PassengerCapacity *int       `json:"passenger_capacity,omitempty"`
	Description       *string    `json:"description,omitempty"`
	Images            []string   `json:"images,omitempty"`
	Features          []string   `json:"features,omitempty"`
	BrandID           *uuid.UUID `json:"brand_id,omitempty"`
}
