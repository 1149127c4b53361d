//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkslot/internal/infra/payment"
	"inkslot/internal/pkg/config"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const testWebhookSecret = "whsec_test"

func testStripeConfig() config.StripeConfig {
	return config.StripeConfig{
		SecretKey:        "sk_test_123",
		WebhookSecret:    testWebhookSecret,
		WebhookTolerance: 5 * time.Minute,
		Currency:         "usd",
	}
}

func signedEvent(t *testing.T, eventType string, object map[string]any) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":          "evt_test_1",
		"object":      "event",
		"created":     time.Now().Unix(),
		"type":        eventType,
		"api_version": stripe.APIVersion,
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
		Scheme:    "v1",
	})
	return payload, signed.Header
}

func TestStripeGateway_VerifyEvent(t *testing.T) {
	gw := payment.NewStripeGateway(testStripeConfig())
	reservationID := uuid.New()
	intent := map[string]any{
		"id":       "pi_123",
		"object":   "payment_intent",
		"metadata": map[string]any{"reservation_id": reservationID.String()},
	}

	t.Run("succeeded intent", func(t *testing.T) {
		payload, header := signedEvent(t, "payment_intent.succeeded", intent)
		evt, err := gw.VerifyEvent(payload, header)
		require.NoError(t, err)
		assert.Equal(t, shared.PaymentSucceeded, evt.Type)
		assert.Equal(t, "pi_123", evt.IntentID)
		assert.Equal(t, reservationID, evt.ReservationID)
	})

	t.Run("canceled intent", func(t *testing.T) {
		payload, header := signedEvent(t, "payment_intent.canceled", intent)
		evt, err := gw.VerifyEvent(payload, header)
		require.NoError(t, err)
		assert.Equal(t, shared.PaymentCanceled, evt.Type)
	})

	t.Run("unrelated event is ignored", func(t *testing.T) {
		payload, header := signedEvent(t, "customer.created", map[string]any{"id": "cus_1", "object": "customer"})
		evt, err := gw.VerifyEvent(payload, header)
		require.NoError(t, err)
		assert.Equal(t, shared.PaymentIgnored, evt.Type)
	})

	t.Run("tampered payload", func(t *testing.T) {
		payload, header := signedEvent(t, "payment_intent.succeeded", intent)
		payload = append(payload, ' ')
		_, err := gw.VerifyEvent(payload, header)
		assert.True(t, errs.Is(err, payment.ErrInvalidSignature))
	})

	t.Run("bad reservation id in metadata", func(t *testing.T) {
		payload, header := signedEvent(t, "payment_intent.succeeded", map[string]any{
			"id": "pi_9", "object": "payment_intent", "metadata": map[string]any{"reservation_id": "nope"},
		})
		_, err := gw.VerifyEvent(payload, header)
		assert.True(t, errs.Is(err, payment.ErrMalformedEvent))
	})

	t.Run("webhook secret missing", func(t *testing.T) {
		_, err := payment.NewStripeGateway(config.StripeConfig{}).VerifyEvent([]byte("{}"), "t=1,v1=abc")
		assert.ErrorIs(t, err, payment.ErrNotConfigured)
	})
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	reservationID := uuid.New()

	t.Run("success", func(t *testing.T) {
		var (
			gotPath   string
			gotIdem   string
			gotValues map[string][]string
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotIdem = r.Header.Get("Idempotency-Key")
			assert.NoError(t, r.ParseForm())
			gotValues = r.PostForm
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc"}`))
		}))
		defer srv.Close()

		backends := &stripe.Backends{
			API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
				URL:           stripe.String(srv.URL),
				LeveledLogger: &stripe.LeveledLogger{Level: stripe.LevelNull},
			}),
		}
		gw := payment.NewStripeGatewayWithBackends(testStripeConfig(), backends)

		intent, err := gw.CreatePaymentIntent(context.Background(), shared.PaymentIntentRequest{
			ReservationID:      reservationID,
			AmountCents:        5000,
			Currency:           "USD",
			DestinationAccount: "acct_artist",
			Metadata:           map[string]string{"artist_id": "a-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, "pi_123", intent.ID)
		assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)

		assert.Equal(t, "/v1/payment_intents", gotPath)
		assert.Equal(t, payment.IdempotencyKey(reservationID), gotIdem)
		assert.Equal(t, []string{"5000"}, gotValues["amount"])
		assert.Equal(t, []string{"usd"}, gotValues["currency"])
		assert.Equal(t, []string{"acct_artist"}, gotValues["transfer_data[destination]"])
		assert.Equal(t, []string{reservationID.String()}, gotValues["metadata[reservation_id]"])
		assert.Equal(t, []string{"a-1"}, gotValues["metadata[artist_id]"])
	})

	t.Run("secret key missing", func(t *testing.T) {
		cfg := testStripeConfig()
		cfg.SecretKey = ""
		_, err := payment.NewStripeGateway(cfg).CreatePaymentIntent(context.Background(), shared.PaymentIntentRequest{ReservationID: reservationID})
		assert.ErrorIs(t, err, payment.ErrNotConfigured)
	})
}

func TestIdempotencyKey(t *testing.T) {
	id := uuid.MustParse("9b2f8a0e-3c1d-4f8e-9a51-7f0c2d1e4b6a")
	assert.Equal(t, "reservation-9b2f8a0e-3c1d-4f8e-9a51-7f0c2d1e4b6a", payment.IdempotencyKey(id))
}
