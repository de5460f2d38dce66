package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

// SummaryService resolves the flat summaries booking cards are enriched
// with. Lookups go cache-aside; with the no-op cache every lookup is a
// straight backend fetch.
type SummaryService struct {
	api      domain.FlatAPI
	cache    domain.Cache
	cacheTTL time.Duration
	workers  int
}

func NewSummaryService(api domain.FlatAPI, cache domain.Cache, ttl time.Duration, workers int) *SummaryService {
	if workers <= 0 {
		workers = 4
	}
	return &SummaryService{api: api, cache: cache, cacheTTL: ttl, workers: workers}
}

func (s *SummaryService) GetSummary(ctx context.Context, flatID int64) (domain.FlatSummary, error) {
	key := fmt.Sprintf("flat:%d:summary", flatID)
	var fs domain.FlatSummary
	if ok, _ := s.cache.Get(ctx, key, &fs); ok {
		return fs, nil
	}
	f, err := s.api.GetFlat(ctx, flatID)
	if err != nil {
		return domain.FlatSummary{}, err
	}
	fs = f.Summary()
	_ = s.cache.Set(ctx, key, fs, int(s.cacheTTL.Seconds()))
	return fs, nil
}

// EnrichedBooking pairs a booking with the summary of its flat. FlatKnown is
// false when the summary fetch failed and Flat holds the placeholder.
type EnrichedBooking struct {
	Booking   domain.Booking
	Flat      domain.FlatSummary
	FlatKnown bool
}

// Enrich resolves summaries for a whole booking list with bounded
// concurrency. A failed summary degrades that entry to a placeholder; it
// never fails the list.
func (s *SummaryService) Enrich(ctx context.Context, bookings []domain.Booking) []EnrichedBooking {
	out := make([]EnrichedBooking, len(bookings))
	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i, b := range bookings {
		i, b := i, b
		out[i] = EnrichedBooking{Booking: b, Flat: PlaceholderSummary(b.FlatID)}
		g.Go(func() error {
			fs, err := s.GetSummary(ctx, b.FlatID)
			if err != nil {
				log.Warn().Int64("flat_id", b.FlatID).Err(err).Msg("flat summary unavailable")
				return nil
			}
			out[i].Flat = fs
			out[i].FlatKnown = true
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// PlaceholderSummary stands in when the flat could not be fetched.
func PlaceholderSummary(flatID int64) domain.FlatSummary {
	return domain.FlatSummary{ID: flatID, Name: fmt.Sprintf("Flat #%d", flatID)}
}
