//go:build unit || e2e

package builder

import (
	"time"

	dombooking "moveit-backend/internal/domain/booking"
	reqdto "moveit-backend/internal/handler/dto/request"
	"moveit-backend/internal/usecase/commands"
	"moveit-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID         uuid.UUID
	CarID          uuid.UUID
	CarName        string
	PricePerDay    int64
	StartDate      time.Time
	EndDate        time.Time
	PaymentStatus  string
	TransactionID  string
	TransactionRef string
}

// Defaults describe a five night Lagos rental priced at 50000 per day.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:         uuid.New(),
		CarID:          uuid.New(),
		CarName:        "Toyota Corolla",
		PricePerDay:    50000,
		StartDate:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		PaymentStatus:  "successful",
		TransactionID:  "4837201",
		TransactionRef: "booking-1710000000000-123456",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Days() int {
	r, _ := dombooking.NewDateRange(b.StartDate, b.EndDate)
	return r.Days()
}

func (b *BookingBuilder) TotalAmount() int64 {
	r, _ := dombooking.NewDateRange(b.StartDate, b.EndDate)
	return r.TotalAmount(b.PricePerDay)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	dates, err := dombooking.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	txID := b.TransactionID
	return dombooking.NewBooking(
		b.UserID,
		dombooking.CarSpec{ID: b.CarID, Name: b.CarName, PricePerDay: b.PricePerDay},
		dates,
		dombooking.ParsePaymentStatus(b.PaymentStatus),
		&txID,
		b.TransactionRef,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	txID := b.TransactionID
	return reqdto.CreateBookingRequest{
		CarID:          b.CarID,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		NumberOfDays:   b.Days(),
		TotalAmount:    b.TotalAmount(),
		PaymentStatus:  b.PaymentStatus,
		TransactionID:  &txID,
		TransactionRef: b.TransactionRef,
	}
}

func (b *BookingBuilder) BuildCarSnapshot() *commands.CarSnapshot {
	return &commands.CarSnapshot{
		ID:          b.CarID,
		Name:        b.CarName,
		Status:      "AVAILABLE",
		PricePerDay: b.PricePerDay,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	txID := b.TransactionID
	return &queries.BookingView{
		ID:             uuid.New(),
		UserID:         b.UserID,
		CarID:          b.CarID,
		CarName:        b.CarName,
		PricePerDay:    b.PricePerDay,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		NumberOfDays:   int32(b.Days()),
		TotalAmount:    b.TotalAmount(),
		TransactionID:  &txID,
		TransactionRef: b.TransactionRef,
		Status:         "upcoming",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithPaymentStatus(status string) *BookingBuilder {
	b.PaymentStatus = status
	return b
}

func (b *BookingBuilder) WithPricePerDay(price int64) *BookingBuilder {
	b.PricePerDay = price
	return b
}
