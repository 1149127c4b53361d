package payment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"inkslot/internal/pkg/config"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

var (
	ErrNotConfigured    = errors.New("stripe is not configured")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = errors.New("malformed webhook event")
)

const (
	eventIntentSucceeded = "payment_intent.succeeded"
	eventIntentCanceled  = "payment_intent.canceled"

	metadataReservationID = "reservation_id"
)

// StripeGateway creates deposit intents on the platform account with the
// artist's connected account as transfer destination, and verifies webhooks.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	tolerance     time.Duration
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	return NewStripeGatewayWithBackends(cfg, nil)
}

// NewStripeGatewayWithBackends lets tests point the client at a local server.
// Nil backends use the Stripe API.
func NewStripeGatewayWithBackends(cfg config.StripeConfig, backends *stripe.Backends) *StripeGateway {
	g := &StripeGateway{
		webhookSecret: strings.TrimSpace(cfg.WebhookSecret),
		tolerance:     cfg.WebhookTolerance,
	}
	if key := strings.TrimSpace(cfg.SecretKey); key != "" {
		g.api = client.New(key, backends)
	}
	return g
}

// IdempotencyKey ties every intent request for a reservation to one intent,
// so a retried request cannot create a second charge.
func IdempotencyKey(reservationID uuid.UUID) string {
	return "reservation-" + reservationID.String()
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req shared.PaymentIntentRequest) (*shared.PaymentIntent, error) {
	if g.api == nil {
		return nil, ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountCents),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(req.DestinationAccount),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(IdempotencyKey(req.ReservationID))
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.AddMetadata(metadataReservationID, req.ReservationID.String())

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrapf(err, "create payment intent for reservation %s", req.ReservationID)
	}
	return &shared.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// VerifyEvent checks the Stripe-Signature header and reduces the event to the
// payment intent outcome. Event types the booking flow does not act on are
// returned as PaymentIgnored.
func (g *StripeGateway) VerifyEvent(payload []byte, signatureHeader string) (*shared.PaymentEvent, error) {
	if g.webhookSecret == "" {
		return nil, ErrNotConfigured
	}
	evt, err := webhook.ConstructEventWithTolerance(payload, signatureHeader, g.webhookSecret, g.tolerance)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignature)
	}

	out := &shared.PaymentEvent{ID: evt.ID, Type: shared.PaymentIgnored}
	switch string(evt.Type) {
	case eventIntentSucceeded:
		out.Type = shared.PaymentSucceeded
	case eventIntentCanceled:
		out.Type = shared.PaymentCanceled
	default:
		return out, nil
	}

	if evt.Data == nil {
		return nil, ErrMalformedEvent
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(evt.Data.Raw, &pi); err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}
	out.IntentID = pi.ID
	if raw := strings.TrimSpace(pi.Metadata[metadataReservationID]); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errs.Mark(err, ErrMalformedEvent)
		}
		out.ReservationID = id
	}
	return out, nil
}
