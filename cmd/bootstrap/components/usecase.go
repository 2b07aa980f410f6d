package components

import (
	"court-booking/internal/domain/booking"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingRules,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingRules(cfg config.Config) (*booking.Rules, error) {
	cal, err := booking.LoadCalendar(cfg.Booking.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid BOOKING_TIMEZONE")
	}
	policy, err := booking.ParsePolicy(cfg.Booking.Policy)
	if err != nil {
		return nil, errs.Wrap(err, "invalid BOOKING_POLICY")
	}
	window := booking.Window{
		OpenHour: cfg.Booking.WindowOpenHour,
		Enabled:  cfg.Booking.WindowCheckEnabled,
	}
	return booking.NewRules(cal, policy, window), nil
}
