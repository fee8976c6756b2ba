package repository

import (
	"context"

	"moveit-backend/internal/domain/booking"
	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			user_id, car_id, car_name, price_per_day,
			start_date, end_date, number_of_days, total_amount,
			transaction_id, transaction_ref, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.UserID(),
		b.CarID(),
		b.CarName(),
		b.PricePerDay(),
		b.Dates().Start(),
		b.Dates().End(),
		b.NumberOfDays(),
		b.TotalAmount(),
		b.TransactionID(),
		b.TransactionRef(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE id = $2
	`

	tag, err := tx.Exec(ctx, query, status.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}
