package components

import (
	"court-booking/internal/handler"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, u *api.UserHandler) handler.Handlers {
			return handler.Handlers{Booking: b, User: u}
		},
	),
	fx.Invoke(handler.NewRouter),
)
