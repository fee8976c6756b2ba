package repository

import (
	"context"

	"moveit-backend/internal/domain/car"
	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CarRepository struct {
	db db.DBTX
}

func NewCarRepository(dbtx db.DBTX) *CarRepository {
	return &CarRepository{db: dbtx}
}

func (r *CarRepository) Create(ctx context.Context, tx db.DBTX, c *car.Car) (uuid.UUID, error) {
	const query = `
		INSERT INTO cars (
			name, plate_number, status, price_per_day,
			passenger_capacity, description, images, features, brand_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		c.Name(),
		c.PlateNumber(),
		c.Status().String(),
		c.PricePerDay(),
		c.PassengerCapacity(),
		c.Description(),
		c.Images(),
		c.Features(),
		c.BrandID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create car", err)
	}

	return id, nil
}

func (r *CarRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, c *car.Car) error {
	const query = `
		UPDATE cars
		SET name = $1, plate_number = $2, status = $3, price_per_day = $4,
		    passenger_capacity = $5, description = $6, images = $7,
		    features = $8, brand_id = $9, updated_at = now()
		WHERE id = $10
	`

	tag, err := tx.Exec(ctx, query,
		c.Name(),
		c.PlateNumber(),
		c.Status().String(),
		c.PricePerDay(),
		c.PassengerCapacity(),
		c.Description(),
		c.Images(),
		c.Features(),
		c.BrandID(),
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *CarRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *CarRepository) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*commands.CarSnapshot, error) {
	const query = `
		SELECT id, name, status, price_per_day
		FROM cars
		WHERE id = $1
	`

	snapshot := &commands.CarSnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.Name,
		&snapshot.Status,
		&snapshot.PricePerDay,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find car", err)
	}

	return snapshot, nil
}
