package commands

import (
	"context"

	"moveit-backend/internal/domain/brand"
	reqdto "moveit-backend/internal/handler/dto/request"
	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/pkg/errs"
	"moveit-backend/internal/pkg/patch"
	"moveit-backend/internal/usecase/queries"
	"moveit-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDuplicateBrand = errs.New("brand name already registered")
	ErrBrandHasCars   = errs.New("brand has cars and cannot be deleted")
)

type BrandCommands interface {
	CreateBrand(ctx context.Context, req reqdto.CreateBrandRequest) (*queries.BrandView, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, req reqdto.UpdateBrandRequest) (*queries.BrandView, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}

type brandCommandsImpl struct {
	brandRepo    BrandRepository
	brandQueries queries.BrandQueries
	db           *pgxpool.Pool
}

func NewBrandCommands(
	brandRepo BrandRepository,
	brandQueries queries.BrandQueries,
	db *pgxpool.Pool,
) BrandCommands {
	return &brandCommandsImpl{
		brandRepo:    brandRepo,
		brandQueries: brandQueries,
		db:           db,
	}
}

func (b *brandCommandsImpl) CreateBrand(ctx context.Context, req reqdto.CreateBrandRequest) (*queries.BrandView, error) {
	brandEntity, err := brand.NewBrand(req.Name, req.Image)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	brandID, err := shared.RunInTx(ctx, b.db, func(tx db.DBTX) (uuid.UUID, error) {
		return b.brandRepo.Create(ctx, tx, brandEntity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateBrand
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return b.brandQueries.GetByID(ctx, brandID)
}

func (b *brandCommandsImpl) UpdateBrand(ctx context.Context, id uuid.UUID, req reqdto.UpdateBrandRequest) (*queries.BrandView, error) {
	current, err := b.brandQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image := current.Image
	if req.Image != nil {
		image = req.Image
	}

	brandEntity, err := brand.NewBrand(patch.Coalesce(req.Name, current.Name), image)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.RunInTx(ctx, b.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, b.brandRepo.Update(ctx, tx, id, brandEntity)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, queries.ErrBrandNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateBrand
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return b.brandQueries.GetByID(ctx, id)
}

func (b *brandCommandsImpl) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, b.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, b.brandRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return queries.ErrBrandNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrBrandHasCars
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
