package bootstrap

import (
	"inkslot/internal/domain/availability"
	"inkslot/internal/infra/embed"
	"inkslot/internal/pkg/config"

	"go.uber.org/fx"
)

var EmbedModule = fx.Module("embed",
	fx.Provide(
		fx.Annotate(
			NewEmbedClient,
			fx.As(new(availability.EmbedProvider)),
		),
	),
)

func NewEmbedClient(cfg config.Config) *embed.Client {
	return embed.NewClient(cfg.Embed)
}
