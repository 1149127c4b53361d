package embed

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"inkslot/internal/domain/calendar"
	"inkslot/internal/pkg/config"
	"inkslot/internal/pkg/errs"
)

const maxResponseBytes = 1 << 20

// Client reads open slots from the scheduling widget's public API.
type Client struct {
	http       *http.Client
	baseURL    string
	apiKey     string
	slotLength time.Duration
}

func NewClient(cfg config.EmbedConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	length := cfg.SlotLength
	if length <= 0 {
		length = time.Hour
	}
	return &Client{
		http:       &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		slotLength: length,
	}
}

type slotsResponse struct {
	// Slots are grouped by local date.
	Slots map[string][]struct {
		Time time.Time  `json:"time"`
		End  *time.Time `json:"end,omitempty"`
	} `json:"slots"`
}

// AvailableSlots returns the widget's open slots for the calendar day that
// starts at date.
func (c *Client) AvailableSlots(ctx context.Context, username, eventType string, date time.Time) ([]calendar.Interval, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("eventTypeSlug", eventType)
	q.Set("startTime", date.UTC().Format(time.RFC3339))
	q.Set("endTime", date.AddDate(0, 0, 1).UTC().Format(time.RFC3339))
	q.Set("timeZone", "UTC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/slots?"+q.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "build embed request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "embed request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, errs.Newf("embed returned status %d", resp.StatusCode)
	}

	var body slotsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "decode embed slots")
	}

	var out []calendar.Interval
	for day, slots := range body.Slots {
		for _, s := range slots {
			end := s.Time.Add(c.slotLength)
			if s.End != nil {
				end = *s.End
			}
			iv, err := calendar.NewInterval(s.Time, end)
			if err != nil {
				return nil, errs.Wrapf(err, "embed slot on %s", day)
			}
			out = append(out, iv)
		}
	}
	return out, nil
}
