package readstore

import (
	"context"

	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/pkg/pgconv"
	"moveit-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `
	id, user_id, car_id, car_name, price_per_day,
	start_date, end_date, number_of_days, total_amount,
	transaction_id, transaction_ref, status, created_at, updated_at
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

// FindByTransactionRef backs the replay path: resubmitting an already
// recorded transaction reference returns the stored booking.
func (r *BookingReadStore) FindByTransactionRef(ctx context.Context, txRef string) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE transaction_ref = $1`, txRef)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by transaction ref", err)
	}

	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user ID", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	result := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v             queries.BookingView
		transactionID pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	err := row.Scan(
		&v.ID, &v.UserID, &v.CarID, &v.CarName, &v.PricePerDay,
		&v.StartDate, &v.EndDate, &v.NumberOfDays, &v.TotalAmount,
		&transactionID, &v.TransactionRef, &v.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.TransactionID = pgconv.StringPtrFromPgtype(transactionID)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
