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

const carColumns = `
	c.id, c.name, c.plate_number, c.status, c.price_per_day,
	c.passenger_capacity, c.description, c.images, c.features,
	c.brand_id, b.name AS brand_name, c.created_at, c.updated_at
`

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+carColumns+` FROM cars c JOIN brands b ON b.id = c.brand_id WHERE c.id = $1`, id)

	view, err := scanCarView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	return view, nil
}

func (r *CarReadStore) FindAll(ctx context.Context) ([]*queries.CarView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+carColumns+` FROM cars c JOIN brands b ON b.id = c.brand_id ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cars", err)
	}
	defer rows.Close()

	result := make([]*queries.CarView, 0)
	for rows.Next() {
		view, scanErr := scanCarView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate car rows", err)
	}

	return result, nil
}

func scanCarView(row pgx.Row) (*queries.CarView, error) {
	var (
		v         queries.CarView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&v.ID, &v.Name, &v.PlateNumber, &v.Status, &v.PricePerDay,
		&v.PassengerCapacity, &v.Description, &v.Images, &v.Features,
		&v.BrandID, &v.BrandName, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
