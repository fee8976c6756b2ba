package repository

import (
	"context"

	"moveit-backend/internal/domain/brand"
	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type BrandRepository struct {
	db db.DBTX
}

func NewBrandRepository(dbtx db.DBTX) *BrandRepository {
	return &BrandRepository{db: dbtx}
}

func (r *BrandRepository) Create(ctx context.Context, tx db.DBTX, b *brand.Brand) (uuid.UUID, error) {
	const query = `
		INSERT INTO brands (name, image)
		VALUES ($1, $2)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, b.Name(), b.Image()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create brand", err)
	}

	return id, nil
}

func (r *BrandRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, b *brand.Brand) error {
	const query = `
		UPDATE brands
		SET name = $1, image = $2, updated_at = now()
		WHERE id = $3
	`

	tag, err := tx.Exec(ctx, query, b.Name(), b.Image(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update brand", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("brand not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BrandRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete brand", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("brand not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BrandRepository) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*commands.BrandSnapshot, error) {
	const query = `SELECT id, name FROM brands WHERE id = $1`

	snapshot := &commands.BrandSnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(&snapshot.ID, &snapshot.Name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find brand", err)
	}

	return snapshot, nil
}
