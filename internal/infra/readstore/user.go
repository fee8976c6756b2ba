package readstore

import (
	"context"

	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/pkg/pgconv"
	"moveit-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

// FindByEmail returns the user view together with the stored password hash
// for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, name, role, is_active, password_hash
		FROM users
		WHERE email = $1
	`

	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &v, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, name, role, is_active
		FROM users
		WHERE id = $1
	`

	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &v, nil
}
