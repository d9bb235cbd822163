package components

import (
	"gleamshop/internal/handler"
	"gleamshop/internal/handler/api"
	"gleamshop/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
