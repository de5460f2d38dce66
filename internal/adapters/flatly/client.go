// internal/adapters/flatly/client.go
package flatly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JianhaoLuo18/UniFrontend/internal/adapters/observability"
	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

// Client talks to the Flatly backend. One round trip per call, no retries,
// no backoff: a failed user action stays failed until the user re-triggers it.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string, timeout time.Duration) (*Client, error) {
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}, nil
}

// RequestError is a completed round trip the backend rejected. Body carries
// the response body text, which is what the screens show to the user.
type RequestError struct {
	Op     string
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("flatly: %s: backend returned %d", e.Op, e.Status)
	}
	return fmt.Sprintf("flatly: %s: backend returned %d: %s", e.Op, e.Status, e.Body)
}

// Message is the user-facing text for this failure: the raw body when the
// backend sent one, the status line otherwise.
func (e *RequestError) Message() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ---- Public API ----

func (c *Client) SearchFlats(ctx context.Context, f domain.SearchFilters) ([]domain.Flat, error) {
	u := c.base + "/api/flats/filter"
	if q := filterQuery(f).Encode(); q != "" {
		u += "?" + q
	}
	var out []domain.Flat
	if err := c.do(ctx, "search_flats", http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFlat(ctx context.Context, id int64) (domain.Flat, error) {
	var out domain.Flat
	u := fmt.Sprintf("%s/api/flats/%d", c.base, id)
	if err := c.do(ctx, "get_flat", http.MethodGet, u, nil, &out); err != nil {
		return domain.Flat{}, err
	}
	if out.ID == 0 {
		return domain.Flat{}, fmt.Errorf("flatly: get_flat: payload for flat %d is missing an id", id)
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	var out domain.Booking
	u := c.base + "/api/bookings"
	if err := c.do(ctx, "create_booking", http.MethodPost, u, b, &out); err != nil {
		return domain.Booking{}, err
	}
	if out.ID == 0 {
		return domain.Booking{}, errors.New("flatly: create_booking: created booking payload is missing an id")
	}
	return out, nil
}

func (c *Client) ListActiveBookings(ctx context.Context, email string) ([]domain.Booking, error) {
	q := url.Values{}
	q.Set("userEmail", email)
	u := c.base + "/api/bookings/active?" + q.Encode()
	var out []domain.Booking
	if err := c.do(ctx, "list_active_bookings", http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelBooking(ctx context.Context, id int64) error {
	u := fmt.Sprintf("%s/api/bookings/%d/cancel", c.base, id)
	// cancel carries no meaningful response body; success is the status code
	return c.do(ctx, "cancel_booking", http.MethodPost, u, nil, nil)
}

// ---- Internals ----

// filterQuery maps zero/empty sentinel fields to "parameter absent".
func filterQuery(f domain.SearchFilters) url.Values {
	v := url.Values{}
	if f.Location != "" {
		v.Set("location", f.Location)
	}
	if f.MinPrice != 0 {
		v.Set("minPrice", strconv.Itoa(f.MinPrice))
	}
	if f.MaxPrice != 0 {
		v.Set("maxPrice", strconv.Itoa(f.MaxPrice))
	}
	if f.RoomNumber != 0 {
		v.Set("roomNumber", strconv.Itoa(f.RoomNumber))
	}
	if f.MaxDistance != 0 {
		v.Set("maxDistance", strconv.FormatFloat(f.MaxDistance, 'f', -1, 64))
	}
	return v
}

func (c *Client) do(ctx context.Context, op, method, u string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("flatly: %s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("flatly: %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "flatly-client/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("flatly", op, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("flatly: %s: %w", op, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("flatly", op, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RequestError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("flatly: %s: decode response: %w", op, err)
	}
	return nil
}
