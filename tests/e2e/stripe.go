//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// FakeStripe answers payment intent creation and signs webhook payloads with
// the test webhook secret.
type FakeStripe struct {
	srv *httptest.Server

	mu      sync.Mutex
	intents map[string]string // idempotency key -> intent id
	byRes   map[uuid.UUID]string
	calls   int
	fail    bool
}

func NewFakeStripe(t *testing.T) *FakeStripe {
	f := &FakeStripe{}
	f.Reset()
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			http.NotFound(w, r)
			return
		}
		assert.NoError(t, r.ParseForm())

		f.mu.Lock()
		defer f.mu.Unlock()
		f.calls++
		if f.fail {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"unavailable"}}`))
			return
		}

		key := r.Header.Get("Idempotency-Key")
		id, ok := f.intents[key]
		if !ok {
			id = "pi_" + uuid.NewString()[:8]
			f.intents[key] = id
		}
		if res, err := uuid.Parse(r.PostForm.Get("metadata[reservation_id]")); err == nil {
			f.byRes[res] = id
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            id,
			"object":        "payment_intent",
			"client_secret": id + "_secret",
		})
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeStripe) Backends() *stripe.Backends {
	return stripeBackends(f.srv.URL)
}

func (f *FakeStripe) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intents = make(map[string]string)
	f.byRes = make(map[uuid.UUID]string)
	f.calls = 0
	f.fail = false
}

// FailIntents makes every following intent request return 503.
func (f *FakeStripe) FailIntents(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func (f *FakeStripe) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeStripe) IntentFor(reservationID uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byRes[reservationID]
}

// SignedIntentEvent builds a payment_intent webhook body and its
// Stripe-Signature header.
func SignedIntentEvent(t *testing.T, secret, eventType, intentID string, reservationID uuid.UUID) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":          "evt_" + uuid.NewString()[:8],
		"object":      "event",
		"created":     time.Now().Unix(),
		"type":        eventType,
		"api_version": stripe.APIVersion,
		"data": map[string]any{"object": map[string]any{
			"id":       intentID,
			"object":   "payment_intent",
			"metadata": map[string]string{"reservation_id": reservationID.String()},
		}},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
		Scheme:    "v1",
	})
	return payload, signed.Header
}
