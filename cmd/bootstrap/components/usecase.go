package components

import (
	"stay-marketplace/internal/pkg/clock"
	"stay-marketplace/internal/usecase/commands"
	"stay-marketplace/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewListingCommands,
		commands.NewBookingCommands,
		commands.NewReviewCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewPaymentQueries,
	),
)
