package bootstrap

import (
	"reservation-portal/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	SessionTokenModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
