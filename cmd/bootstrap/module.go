package bootstrap

import (
	"inkslot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModule carries everything that talks to the outside world. E2E tests
// swap it for their own container-backed providers.
var InfraModule = fx.Options(
	DBModule,
	RedisModule,
	StripeModule,
	EmbedModule,
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	InfraModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
