package request

import (
	"time"

	"moveit-backend/internal/domain/booking"

	"github.com/google/uuid"
)

// InitializePaymentRequest asks for a checkout link covering the selected
// car over the given date range. Amounts are computed server-side only.
type InitializePaymentRequest struct {
	CarID     uuid.UUID `json:"car_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

func (r InitializePaymentRequest) ToDateRange() (booking.DateRange, error) {
	return booking.NewDateRange(r.StartDate, r.EndDate)
}
