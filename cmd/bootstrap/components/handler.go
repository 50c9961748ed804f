package components

import (
	"reservation-portal/internal/handler"
	"reservation-portal/internal/handler/api"
	"reservation-portal/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewScheduleHandler,
		api.NewBookingHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
