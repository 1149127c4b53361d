package bootstrap

import (
	"inkslot/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewSweeper,
	),
	fx.Invoke(worker.RegisterSweeper),
)
