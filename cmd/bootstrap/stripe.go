package bootstrap

import (
	"log/slog"

	"inkslot/internal/infra/payment"
	"inkslot/internal/pkg/config"
	"inkslot/internal/usecase/shared"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(shared.PaymentGateway)),
			fx.As(new(shared.PaymentEventVerifier)),
		),
	),
)

func NewStripeGateway(cfg config.Config) *payment.StripeGateway {
	if cfg.Stripe.SecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY is empty; deposit payment intents will fail")
	}
	return payment.NewStripeGateway(cfg.Stripe)
}
