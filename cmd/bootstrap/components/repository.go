package components

import (
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/infra/readstore"
	"moveit-backend/internal/infra/repository"
	"moveit-backend/internal/usecase/commands"
	"moveit-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewCarRepository,
			fx.As(new(commands.CarRepository)),
		),
		fx.Annotate(
			repository.NewBrandRepository,
			fx.As(new(commands.BrandRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(queries.CarReadStore)),
		),
		fx.Annotate(
			readstore.NewBrandReadStore,
			fx.As(new(queries.BrandReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
