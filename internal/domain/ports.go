package domain

import "context"

// FlatAPI is the backend surface the client consumes. One HTTP round trip
// per call, single attempt; failures come back as errors, never partial data.
type FlatAPI interface {
	SearchFlats(ctx context.Context, f SearchFilters) ([]Flat, error)
	GetFlat(ctx context.Context, id int64) (Flat, error)
	CreateBooking(ctx context.Context, b Booking) (Booking, error)
	ListActiveBookings(ctx context.Context, email string) ([]Booking, error)
	CancelBooking(ctx context.Context, id int64) error
}

// PrefStore persists the single user-identifying field across sessions.
type PrefStore interface {
	SaveEmail(email string) error
	LoadEmail() (email string, ok bool, err error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
