package screens_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "github.com/JianhaoLuo18/UniFrontend/internal/adapters/redis"
	"github.com/JianhaoLuo18/UniFrontend/internal/app"
	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
	"github.com/JianhaoLuo18/UniFrontend/internal/screens"
)

func newList(api *stubAPI, prefs *fakePrefs) *screens.BookingList {
	summaries := app.NewSummaryService(api, redisad.Noop{}, time.Minute, 2)
	return screens.NewBookingList(api, prefs, summaries)
}

func TestBookingList_NoStoredEmail_NoNetworkCall(t *testing.T) {
	api := &stubAPI{}
	l := newList(api, &fakePrefs{})

	l.Load(context.Background())

	assert.True(t, l.NeedsEmail())
	assert.Zero(t, api.networkCalls(), "prompt state must not fetch")
}

func TestBookingList_LoadsCardsForStoredEmail(t *testing.T) {
	api := &stubAPI{
		listFn: func(email string) ([]domain.Booking, error) {
			assert.Equal(t, "ana@example.com", email)
			return []domain.Booking{
				{ID: 1, FlatID: 5, Status: domain.StatusActive},
				{ID: 2, FlatID: 7, Status: domain.StatusActive},
			}, nil
		},
		getFn: func(id int64) (domain.Flat, error) {
			return domain.Flat{ID: id, Name: "Flat", Images: []string{"img"}}, nil
		},
	}
	l := newList(api, &fakePrefs{email: "ana@example.com", has: true})

	l.Load(context.Background())

	require.Equal(t, screens.PhaseLoaded, l.Phase())
	assert.False(t, l.NeedsEmail())
	require.Len(t, l.Cards(), 2)
	assert.True(t, l.Cards()[0].FlatKnown())
}

func TestBookingList_EmptyResultIsDistinctFromNoEmail(t *testing.T) {
	api := &stubAPI{}
	l := newList(api, &fakePrefs{email: "ana@example.com", has: true})

	l.Load(context.Background())

	assert.True(t, l.Empty())
	assert.False(t, l.NeedsEmail())
}

func TestBookingList_FetchFailure(t *testing.T) {
	api := &stubAPI{listFn: func(string) ([]domain.Booking, error) {
		return nil, &requestErr{status: 500, body: "upstream exploded"}
	}}
	l := newList(api, &fakePrefs{email: "ana@example.com", has: true})

	l.Load(context.Background())

	assert.Equal(t, screens.PhaseFailed, l.Phase())
	assert.Equal(t, "upstream exploded", l.ErrorMessage())

	// refresh re-runs the same fetch and can recover
	api.listFn = nil
	l.Refresh(context.Background())
	assert.Equal(t, screens.PhaseLoaded, l.Phase())
	assert.Equal(t, 2, api.listCalls)
}

func TestBookingList_CancelThroughCardRefreshesListOnce(t *testing.T) {
	api := &stubAPI{listFn: func(string) ([]domain.Booking, error) {
		return []domain.Booking{{ID: 12, FlatID: 5, Status: domain.StatusActive}}, nil
	}}
	l := newList(api, &fakePrefs{email: "ana@example.com", has: true})

	l.Load(context.Background())
	require.Len(t, l.Cards(), 1)
	require.Equal(t, 1, api.listCalls)

	l.Cards()[0].Cancel(context.Background())

	assert.Equal(t, 1, api.cancelCalls)
	assert.Equal(t, 2, api.listCalls, "exactly one refresh after a successful cancel")
}
