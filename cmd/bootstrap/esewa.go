package bootstrap

import (
	"gleamshop/internal/pkg/config"
	"gleamshop/internal/pkg/esewa"

	"go.uber.org/fx"
)

var EsewaModule = fx.Module("esewa",
	fx.Provide(
		NewEsewaCodec,
	),
)

func NewEsewaCodec(cfg config.Config) (*esewa.Codec, error) {
	return esewa.NewCodec(cfg.Esewa)
}
