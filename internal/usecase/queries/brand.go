package queries

import (
	"context"

	"moveit-backend/internal/infra"
	"moveit-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBrandNotFound = errs.New("brand not found")

type BrandQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BrandView, error)
	ListAll(ctx context.Context) ([]*BrandView, error)
}

type BrandReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BrandView, error)
	FindAll(ctx context.Context) ([]*BrandView, error)
}

type brandQueriesImpl struct {
	readStore BrandReadStore
}

func NewBrandQueries(readStore BrandReadStore) BrandQueries {
	return &brandQueriesImpl{readStore: readStore}
}

func (q *brandQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BrandView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *brandQueriesImpl) ListAll(ctx context.Context) ([]*BrandView, error) {
	return q.readStore.FindAll(ctx)
}
