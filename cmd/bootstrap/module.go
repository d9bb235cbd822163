package bootstrap

import (
	"gleamshop/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	EsewaModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
