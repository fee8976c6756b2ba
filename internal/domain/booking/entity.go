package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice      = errors.New("price per day cannot be negative")
	ErrAmountMismatch     = errors.New("submitted amount does not match computed amount")
	ErrDayCountMismatch   = errors.New("submitted day count does not match computed day count")
	ErrMissingTxRef       = errors.New("transaction reference is required")
	ErrPaymentNotCaptured = errors.New("payment was not captured")
)

// CarSpec is the slice of the selected car a booking snapshots at creation.
// Name and price are copied so later fleet edits do not rewrite history.
type CarSpec struct {
	ID          uuid.UUID
	Name        string
	PricePerDay int64
}

type Booking struct {
	id             uuid.UUID
	userID         uuid.UUID
	carID          uuid.UUID
	carName        string
	pricePerDay    int64
	dates          DateRange
	numberOfDays   int
	totalAmount    int64
	transactionID  *string
	transactionRef string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking builds a booking for an already-captured payment. The day count
// and total are derived from the range and the car's price; the caller's own
// figures are checked separately (see VerifyClientFigures).
func NewBooking(
	userID uuid.UUID,
	car CarSpec,
	dates DateRange,
	payment PaymentStatus,
	transactionID *string,
	transactionRef string,
) (*Booking, error) {
	if car.PricePerDay < 0 {
		return nil, ErrNegativePrice
	}
	if transactionRef == "" {
		return nil, ErrMissingTxRef
	}
	if !payment.Paid() {
		return nil, ErrPaymentNotCaptured
	}

	return &Booking{
		id:             uuid.New(),
		userID:         userID,
		carID:          car.ID,
		carName:        car.Name,
		pricePerDay:    car.PricePerDay,
		dates:          dates,
		numberOfDays:   dates.Days(),
		totalAmount:    dates.TotalAmount(car.PricePerDay),
		transactionID:  transactionID,
		transactionRef: transactionRef,
		status:         StatusUpcoming,
	}, nil
}

// VerifyClientFigures cross-checks the day count and amount the client
// computed against the server-side derivation.
func (b *Booking) VerifyClientFigures(numberOfDays int, totalAmount int64) error {
	if numberOfDays != b.numberOfDays {
		return ErrDayCountMismatch
	}
	if totalAmount != b.totalAmount {
		return ErrAmountMismatch
	}
	return nil
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) CarID() uuid.UUID       { return b.carID }
func (b *Booking) CarName() string        { return b.carName }
func (b *Booking) PricePerDay() int64     { return b.pricePerDay }
func (b *Booking) Dates() DateRange       { return b.dates }
func (b *Booking) NumberOfDays() int      { return b.numberOfDays }
func (b *Booking) TotalAmount() int64     { return b.totalAmount }
func (b *Booking) TransactionID() *string { return b.transactionID }
func (b *Booking) TransactionRef() string { return b.transactionRef }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
