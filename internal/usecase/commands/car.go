package commands

import (
	"context"

	"moveit-backend/internal/domain/car"
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
	ErrBrandNotFound  = errs.New("brand not found")
	ErrDuplicatePlate = errs.New("plate number already registered")
	ErrCarHasBookings = errs.New("car has bookings and cannot be deleted")
)

type CarCommands interface {
	CreateCar(ctx context.Context, req reqdto.CreateCarRequest) (*queries.CarView, error)
	UpdateCar(ctx context.Context, id uuid.UUID, req reqdto.UpdateCarRequest) (*queries.CarView, error)
	DeleteCar(ctx context.Context, id uuid.UUID) error
}

type carCommandsImpl struct {
	carRepo    CarRepository
	brandRepo  BrandRepository
	carQueries queries.CarQueries
	db         *pgxpool.Pool
}

func NewCarCommands(
	carRepo CarRepository,
	brandRepo BrandRepository,
	carQueries queries.CarQueries,
	db *pgxpool.Pool,
) CarCommands {
	return &carCommandsImpl{
		carRepo:    carRepo,
		brandRepo:  brandRepo,
		carQueries: carQueries,
		db:         db,
	}
}

func (c *carCommandsImpl) CreateCar(ctx context.Context, req reqdto.CreateCarRequest) (*queries.CarView, error) {
	status, err := car.NewStatus(req.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := c.brandRepo.FindSnapshotByID(ctx, req.BrandID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	carEntity, err := car.NewCar(
		req.Name,
		req.PlateNumber,
		status,
		req.PricePerDay,
		req.PassengerCapacity,
		req.Description,
		req.Images,
		req.Features,
		req.BrandID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	carID, err := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (uuid.UUID, error) {
		return c.carRepo.Create(ctx, tx, carEntity)
	})
	if err != nil {
		return nil, classifyCarWriteErr(err)
	}

	return c.carQueries.GetByID(ctx, carID)
}

func (c *carCommandsImpl) UpdateCar(ctx context.Context, id uuid.UUID, req reqdto.UpdateCarRequest) (*queries.CarView, error) {
	current, err := c.carQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := car.NewStatus(patch.Coalesce(req.Status, current.Status))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	brandID := patch.Coalesce(req.BrandID, current.BrandID)
	if req.BrandID != nil {
		if _, err := c.brandRepo.FindSnapshotByID(ctx, brandID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBrandNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	images := current.Images
	if req.Images != nil {
		images = req.Images
	}
	features := current.Features
	if req.Features != nil {
		features = req.Features
	}

	carEntity, err := car.NewCar(
		patch.Coalesce(req.Name, current.Name),
		patch.Coalesce(req.PlateNumber, current.PlateNumber),
		status,
		patch.Coalesce(req.PricePerDay, current.PricePerDay),
		patch.Coalesce(req.PassengerCapacity, int(current.PassengerCapacity)),
		patch.Coalesce(req.Description, current.Description),
		images,
		features,
		brandID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.carRepo.Update(ctx, tx, id, carEntity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrCarNotFound
		}
		return nil, classifyCarWriteErr(err)
	}

	return c.carQueries.GetByID(ctx, id)
}

func (c *carCommandsImpl) DeleteCar(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.carRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return queries.ErrCarNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			// Bookings reference the car; history wins over fleet cleanup.
			return ErrCarHasBookings
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func classifyCarWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrDuplicatePlate
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrBrandNotFound
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
