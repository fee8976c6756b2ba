package request

import (
	"strings"
	"time"

	"moveit-backend/internal/domain/booking"

	"github.com/google/uuid"
)

// CreateBookingRequest is the post-payment confirmation payload. The client
// reports the figures it showed the user plus the gateway redirect outcome;
// the server recomputes everything and treats mismatches as errors.
type CreateBookingRequest struct {
	CarID          uuid.UUID `json:"car_id" binding:"required"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	NumberOfDays   int       `json:"number_of_days" binding:"required,min=1"`
	TotalAmount    int64     `json:"total_amount" binding:"required,min=0"`
	PaymentStatus  string    `json:"payment_status" binding:"required"`
	TransactionID  *string   `json:"transaction_id,omitempty"`
	TransactionRef string    `json:"transaction_ref" binding:"required"`
}

func (r CreateBookingRequest) ToDateRange() (booking.DateRange, error) {
	return booking.NewDateRange(r.StartDate, r.EndDate)
}

func (r CreateBookingRequest) GetTransactionID() *string {
	if r.TransactionID == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.TransactionID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
