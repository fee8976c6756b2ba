package response

import (
	"time"

	"moveit-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CarResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	PlateNumber       string    `json:"plateNumber"`
	Status            string    `json:"status"`
	PricePerDay       int64     `json:"pricePerDay"`
	PassengerCapacity int32     `json:"passengerCapacity"`
	Description       string    `json:"description"`
	Images            []string  `json:"images"`
	Features          []string  `json:"features"`
	BrandID           uuid.UUID `json:"brandId"`
	BrandName         string    `json:"brandName"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromCarView(view *queries.CarView) *CarResponse {
	resp := &CarResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromCarViews(views []*queries.CarView) []*CarResponse {
	result := make([]*CarResponse, len(views))
	for i, v := range views {
		result[i] = FromCarView(v)
	}
	return result
}
