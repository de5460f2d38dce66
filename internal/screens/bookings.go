package screens

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/JianhaoLuo18/UniFrontend/internal/app"
	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

// BookingList is the active-bookings screen. It is driven by the stored
// email: absent email means a prompt and no network call at all. The email is
// read at load time only, not watched.
type BookingList struct {
	api       domain.FlatAPI
	prefs     domain.PrefStore
	summaries *app.SummaryService

	phase   Phase
	noEmail bool
	email   string
	cards   []*BookingCard
	errMsg  string
}

func NewBookingList(api domain.FlatAPI, prefs domain.PrefStore, summaries *app.SummaryService) *BookingList {
	return &BookingList{api: api, prefs: prefs, summaries: summaries}
}

// Load reads the stored email and, when present, fetches the active bookings
// for it. An unreadable store is treated as "no email yet".
func (l *BookingList) Load(ctx context.Context) {
	email, ok, err := l.prefs.LoadEmail()
	if err != nil {
		log.Warn().Err(err).Msg("loading stored email failed")
	}
	if !ok {
		l.noEmail = true
		l.email = ""
		l.cards = nil
		l.phase = PhaseIdle
		return
	}
	l.noEmail = false
	l.email = email
	l.fetch(ctx)
}

// Refresh re-runs the same fetch; it is also the target invoked after a card
// completes a cancellation.
func (l *BookingList) Refresh(ctx context.Context) {
	if l.email == "" {
		l.Load(ctx)
		return
	}
	l.fetch(ctx)
}

func (l *BookingList) fetch(ctx context.Context) {
	l.phase = PhaseLoading
	l.errMsg = ""

	bookings, err := l.api.ListActiveBookings(ctx, l.email)
	if err != nil {
		l.phase = PhaseFailed
		l.errMsg = failMessage(err)
		return
	}

	enriched := l.summaries.Enrich(ctx, bookings)
	cards := make([]*BookingCard, len(enriched))
	for i, eb := range enriched {
		cards[i] = NewBookingCard(l.api, eb, l.Refresh)
	}
	l.cards = cards
	l.phase = PhaseLoaded
}

func (l *BookingList) Phase() Phase          { return l.phase }
func (l *BookingList) ErrorMessage() string  { return l.errMsg }
func (l *BookingList) Cards() []*BookingCard { return l.cards }
func (l *BookingList) Email() string         { return l.email }

// NeedsEmail reports the "no email yet" prompt state, distinct from an empty
// result list.
func (l *BookingList) NeedsEmail() bool { return l.noEmail }

// Empty reports a loaded list with no active bookings.
func (l *BookingList) Empty() bool { return l.phase == PhaseLoaded && len(l.cards) == 0 }
