package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/JianhaoLuo18/UniFrontend/internal/app"
	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

// ---- fakes ----

type fakeAPI struct {
	flats map[int64]domain.Flat

	mu    sync.Mutex
	calls int
}

func (f *fakeAPI) backendCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeAPI) SearchFlats(ctx context.Context, q domain.SearchFilters) ([]domain.Flat, error) {
	return nil, nil
}
func (f *fakeAPI) GetFlat(ctx context.Context, id int64) (domain.Flat, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	fl, ok := f.flats[id]
	if !ok {
		return domain.Flat{}, errors.New("flat not found")
	}
	return fl, nil
}
func (f *fakeAPI) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return b, nil
}
func (f *fakeAPI) ListActiveBookings(ctx context.Context, email string) ([]domain.Booking, error) {
	return nil, nil
}
func (f *fakeAPI) CancelBooking(ctx context.Context, id int64) error { return nil }

type fakeCache struct {
	mu    sync.Mutex
	store map[string]domain.FlatSummary
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	*dst.(*domain.FlatSummary) = v
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string]domain.FlatSummary{}
	}
	c.store[key] = v.(domain.FlatSummary)
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

// ---- tests ----

func TestGetSummary_CacheMissThenHit(t *testing.T) {
	api := &fakeAPI{flats: map[int64]domain.Flat{
		5: {ID: 5, Location: "Warsaw", Name: "Warsaw Center", Images: []string{"img-1", "img-2"}},
	}}
	cache := &fakeCache{}
	s := app.NewSummaryService(api, cache, 10*time.Minute, 2)

	fs, err := s.GetSummary(context.Background(), 5)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if fs.Name != "Warsaw Center" || fs.Image != "img-1" {
		t.Fatalf("unexpected summary: %+v", fs)
	}

	// Mutate the backend to prove the second read is served from cache
	api.flats[5] = domain.Flat{ID: 5, Name: "SHOULD NOT SEE THIS"}

	fs2, err := s.GetSummary(context.Background(), 5)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if fs2.Name != "Warsaw Center" {
		t.Fatalf("expected cached summary, got %+v", fs2)
	}
	if api.backendCalls() != 1 {
		t.Fatalf("expected 1 backend call, got %d", api.backendCalls())
	}
}

func TestGetSummary_FallsBackToLocation(t *testing.T) {
	api := &fakeAPI{flats: map[int64]domain.Flat{
		7: {ID: 7, Location: "Berlin"}, // no display name set
	}}
	s := app.NewSummaryService(api, &fakeCache{}, time.Minute, 2)

	fs, err := s.GetSummary(context.Background(), 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if fs.Name != "Berlin" || fs.Image != "" {
		t.Fatalf("unexpected summary: %+v", fs)
	}
}

func TestEnrich_DegradesToPlaceholder(t *testing.T) {
	api := &fakeAPI{flats: map[int64]domain.Flat{
		5: {ID: 5, Name: "Warsaw Center", Images: []string{"img-1"}},
		// flat 9 is missing: its card must degrade, not fail
	}}
	s := app.NewSummaryService(api, &fakeCache{}, time.Minute, 2)

	cards := s.Enrich(context.Background(), []domain.Booking{
		{ID: 1, FlatID: 5},
		{ID: 2, FlatID: 9},
	})
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if !cards[0].FlatKnown || cards[0].Flat.Name != "Warsaw Center" {
		t.Fatalf("unexpected first card: %+v", cards[0])
	}
	if cards[1].FlatKnown {
		t.Fatalf("expected placeholder for missing flat, got %+v", cards[1])
	}
	if cards[1].Flat.Name != "Flat #9" {
		t.Fatalf("unexpected placeholder label %q", cards[1].Flat.Name)
	}
}
