package response

import (
	"time"

	"moveit-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	CarID          uuid.UUID `json:"carId"`
	CarName        string    `json:"carName"`
	PricePerDay    int64     `json:"pricePerDay"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	NumberOfDays   int32     `json:"numberOfDays"`
	TotalAmount    int64     `json:"totalAmount"`
	TransactionID  *string   `json:"transactionId,omitempty"`
	TransactionRef string    `json:"transactionRef"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, v := range views {
		result[i] = FromBookingView(v)
	}
	return result
}
