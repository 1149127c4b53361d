package components

import (
	"inkslot/internal/handler"
	"inkslot/internal/handler/api"
	"inkslot/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewWebhookHandler,
		api.NewArtistHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Webhook      *api.WebhookHandler
	Artist       *api.ArtistHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Availability: p.Availability,
		Booking:      p.Booking,
		Webhook:      p.Webhook,
		Artist:       p.Artist,
	}
}
