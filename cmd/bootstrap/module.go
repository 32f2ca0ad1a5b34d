package bootstrap

import (
	"residesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	PlatformModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
