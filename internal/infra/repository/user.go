package repository

import (
	"context"

	"moveit-backend/internal/domain/user"
	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (email, name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		u.Email().Value(),
		u.Name(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET last_login = now(), updated_at = now()
		WHERE id = $1
	`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}

	return nil
}

func (r *UserRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*commands.CustomerSnapshot, error) {
	const query = `SELECT id, email, name FROM users WHERE id = $1 AND is_active`

	snapshot := &commands.CustomerSnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(&snapshot.ID, &snapshot.Email, &snapshot.Name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return snapshot, nil
}
