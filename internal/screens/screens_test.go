package screens_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

// stubAPI counts calls and delegates to per-operation functions; a nil
// function means "succeed with zero values". Guarded because list
// enrichment fetches flats concurrently.
type stubAPI struct {
	searchFn func(domain.SearchFilters) ([]domain.Flat, error)
	getFn    func(int64) (domain.Flat, error)
	createFn func(domain.Booking) (domain.Booking, error)
	listFn   func(string) ([]domain.Booking, error)
	cancelFn func(int64) error

	mu                                                         sync.Mutex
	searchCalls, getCalls, createCalls, listCalls, cancelCalls int
}

func (s *stubAPI) SearchFlats(ctx context.Context, f domain.SearchFilters) ([]domain.Flat, error) {
	s.mu.Lock()
	s.searchCalls++
	s.mu.Unlock()
	if s.searchFn != nil {
		return s.searchFn(f)
	}
	return nil, nil
}

func (s *stubAPI) GetFlat(ctx context.Context, id int64) (domain.Flat, error) {
	s.mu.Lock()
	s.getCalls++
	s.mu.Unlock()
	if s.getFn != nil {
		return s.getFn(id)
	}
	return domain.Flat{ID: id}, nil
}

func (s *stubAPI) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	s.mu.Lock()
	s.createCalls++
	s.mu.Unlock()
	if s.createFn != nil {
		return s.createFn(b)
	}
	b.ID = 1
	return b, nil
}

func (s *stubAPI) ListActiveBookings(ctx context.Context, email string) ([]domain.Booking, error) {
	s.mu.Lock()
	s.listCalls++
	s.mu.Unlock()
	if s.listFn != nil {
		return s.listFn(email)
	}
	return nil, nil
}

func (s *stubAPI) CancelBooking(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.cancelCalls++
	s.mu.Unlock()
	if s.cancelFn != nil {
		return s.cancelFn(id)
	}
	return nil
}

func (s *stubAPI) networkCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchCalls + s.getCalls + s.createCalls + s.listCalls + s.cancelCalls
}

type fakePrefs struct {
	email   string
	has     bool
	loadErr error
	saveErr error
	saved   []string
}

func (p *fakePrefs) SaveEmail(email string) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saved = append(p.saved, email)
	p.email, p.has = email, true
	return nil
}

func (p *fakePrefs) LoadEmail() (string, bool, error) {
	if p.loadErr != nil {
		return "", false, p.loadErr
	}
	return p.email, p.has, nil
}

// requestErr mimics a completed round trip the backend rejected; its Message
// is the response body text.
type requestErr struct {
	status int
	body   string
}

func (e *requestErr) Error() string   { return fmt.Sprintf("backend returned %d: %s", e.status, e.body) }
func (e *requestErr) Message() string { return e.body }
