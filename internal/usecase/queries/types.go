package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	CarID          uuid.UUID `json:"car_id"`
	CarName        string    `json:"car_name"`
	PricePerDay    int64     `json:"price_per_day"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	NumberOfDays   int32     `json:"number_of_days"`
	TotalAmount    int64     `json:"total_amount"`
	TransactionID  *string   `json:"transaction_id,omitempty"`
	TransactionRef string    `json:"transaction_ref"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CarView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	PlateNumber       string    `json:"plate_number"`
	Status            string    `json:"status"`
	PricePerDay       int64     `json:"price_per_day"`
	PassengerCapacity int32     `json:"passenger_capacity"`
	Description       string    `json:"description"`
	Images            []string  `json:"images"`
	Features          []string  `json:"features"`
	BrandID           uuid.UUID `json:"brand_id"`
	BrandName         string    `json:"brand_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type BrandView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
