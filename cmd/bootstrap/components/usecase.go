package components

import (
	"inkslot/internal/domain/reservation"
	"inkslot/internal/pkg/clock"
	"inkslot/internal/usecase/commands"
	"inkslot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewProRataCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewExpiryUseCase,
		commands.NewArtistUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
	),
)
