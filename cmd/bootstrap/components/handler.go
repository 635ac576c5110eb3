package components

import (
	"github.com/bothrasports-ops/arena-manager/internal/handler"
	"github.com/bothrasports-ops/arena-manager/internal/handler/api"
	"github.com/bothrasports-ops/arena-manager/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewInventoryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
