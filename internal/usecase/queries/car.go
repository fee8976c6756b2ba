package queries

import (
	"context"

	"moveit-backend/internal/infra"
	"moveit-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCarNotFound = errs.New("car not found")

type CarQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	ListAll(ctx context.Context) ([]*CarView, error)
}

type CarReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	FindAll(ctx context.Context) ([]*CarView, error)
}

type carQueriesImpl struct {
	readStore CarReadStore
}

func NewCarQueries(readStore CarReadStore) CarQueries {
	return &carQueriesImpl{readStore: readStore}
}

func (q *carQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CarView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *carQueriesImpl) ListAll(ctx context.Context) ([]*CarView, error) {
	return q.readStore.FindAll(ctx)
}
