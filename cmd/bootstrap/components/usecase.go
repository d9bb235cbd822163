package components

import (
	"gleamshop/internal/pkg/config"
	"gleamshop/internal/pkg/esewa"
	"gleamshop/internal/usecase/commands"
	"gleamshop/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		NewCheckoutCommands,
		commands.NewPaymentCommands,
	),
)

func NewCheckoutCommands(
	cartRepo commands.CartRepository,
	orderRepo commands.OrderRepository,
	orderQueries queries.OrderQueries,
	codec *esewa.Codec,
	pool *pgxpool.Pool,
	cfg config.Config,
) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(
		cartRepo, orderRepo, orderQueries, codec, pool,
		cfg.Esewa.ClearCartOnCheckout,
	)
}
