//go:build unit

package embed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkslot/internal/infra/embed"
	"inkslot/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AvailableSlots(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("正常系", func(t *testing.T) {
		var gotQuery map[string][]string
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/slots", r.URL.Path)
			gotQuery = r.URL.Query()
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"slots":{"2026-03-02":[
				{"time":"2026-03-02T10:00:00Z"},
				{"time":"2026-03-02T13:00:00Z","end":"2026-03-02T15:00:00Z"}
			]}}`))
		}))
		defer srv.Close()

		c := embed.NewClient(config.EmbedConfig{BaseURL: srv.URL + "/", APIKey: "key", Timeout: time.Second, SlotLength: time.Hour})
		slots, err := c.AvailableSlots(context.Background(), "ren", "consult", day)
		require.NoError(t, err)
		require.Len(t, slots, 2)

		assert.Equal(t, []string{"ren"}, gotQuery["username"])
		assert.Equal(t, []string{"consult"}, gotQuery["eventTypeSlug"])
		assert.Equal(t, []string{"2026-03-02T00:00:00Z"}, gotQuery["startTime"])
		assert.Equal(t, []string{"2026-03-03T00:00:00Z"}, gotQuery["endTime"])
		assert.Equal(t, "Bearer key", gotAuth)

		byStart := map[int]time.Duration{}
		for _, s := range slots {
			byStart[s.Start().Hour()] = s.Duration()
		}
		assert.Equal(t, time.Hour, byStart[10], "start-only slot gets the configured length")
		assert.Equal(t, 2*time.Hour, byStart[13])
	})

	t.Run("upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := embed.NewClient(config.EmbedConfig{BaseURL: srv.URL, Timeout: time.Second})
		_, err := c.AvailableSlots(context.Background(), "ren", "consult", day)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"slots":`))
		}))
		defer srv.Close()

		c := embed.NewClient(config.EmbedConfig{BaseURL: srv.URL, Timeout: time.Second})
		_, err := c.AvailableSlots(context.Background(), "ren", "consult", day)
		assert.Error(t, err)
	})
}
