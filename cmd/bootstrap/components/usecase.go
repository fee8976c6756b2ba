package components

import (
	"moveit-backend/internal/pkg/clock"
	"moveit-backend/internal/usecase"
	"moveit-backend/internal/usecase/commands"
	"moveit-backend/internal/usecase/queries"
	"moveit-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
	newTxRunner,
)

func newTxRunner(pool *pgxpool.Pool) commands.TxRunner {
	return shared.NewTxRunner(pool)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewCarCommands,
		commands.NewBrandCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCarQueries,
		queries.NewBrandQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
