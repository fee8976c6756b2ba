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

type BrandReadStore struct {
	db db.DBTX
}

func NewBrandReadStore(dbtx db.DBTX) *BrandReadStore {
	return &BrandReadStore{db: dbtx}
}

func (r *BrandReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BrandView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, image, created_at, updated_at FROM brands WHERE id = $1`, id)

	view, err := scanBrandView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("brand not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find brand by ID", err)
	}

	return view, nil
}

func (r *BrandReadStore) FindAll(ctx context.Context) ([]*queries.BrandView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, image, created_at, updated_at FROM brands ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find brands", err)
	}
	defer rows.Close()

	result := make([]*queries.BrandView, 0)
	for rows.Next() {
		view, scanErr := scanBrandView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan brand row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate brand rows", err)
	}

	return result, nil
}

func scanBrandView(row pgx.Row) (*queries.BrandView, error) {
	var (
		v         queries.BrandView
		image     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&v.ID, &v.Name, &image, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	v.Image = pgconv.StringPtrFromPgtype(image)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
