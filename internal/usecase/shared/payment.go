package shared

import (
	"context"

	"github.com/google/uuid"
)

type PaymentIntentRequest struct {
	ReservationID      uuid.UUID
	ArtistID           uuid.UUID
	AmountCents        int64
	Currency           string
	DestinationAccount string
	Metadata           map[string]string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway creates deposit-collection handles with the payment processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
}

type PaymentEventType string

const (
	PaymentSucceeded PaymentEventType = "payment_succeeded"
	PaymentCanceled  PaymentEventType = "payment_canceled"
	PaymentIgnored   PaymentEventType = "ignored"
)

// PaymentEvent is a verified webhook notification reduced to what the
// booking flow needs.
type PaymentEvent struct {
	ID            string
	Type          PaymentEventType
	IntentID      string
	ReservationID uuid.UUID
}

type PaymentEventVerifier interface {
	VerifyEvent(payload []byte, signatureHeader string) (*PaymentEvent, error)
}
