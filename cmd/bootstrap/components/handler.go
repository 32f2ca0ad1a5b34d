package components

import (
	"residesk/internal/handler"
	"residesk/internal/handler/api"
	"residesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVisitorHandler,
		api.NewBookingHandler,
		api.NewCommunityHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
