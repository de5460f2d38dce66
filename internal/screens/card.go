package screens

import (
	"context"

	"github.com/JianhaoLuo18/UniFrontend/internal/app"
	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

const msgCancelled = "Booking cancelled successfully."

// BookingCard renders one booking enriched with its flat summary. A summary
// that could not be fetched degrades to a placeholder label; it never fails
// the card. Exactly one cancel attempt runs at a time.
type BookingCard struct {
	api domain.FlatAPI

	booking   domain.Booking
	flat      domain.FlatSummary
	flatKnown bool

	cancelling bool
	message    string
	onRefresh  func(context.Context)
}

// NewBookingCard wraps an enriched booking. onRefresh is the parent list's
// refresh, invoked exactly once after a successful cancel.
func NewBookingCard(api domain.FlatAPI, eb app.EnrichedBooking, onRefresh func(context.Context)) *BookingCard {
	return &BookingCard{
		api:       api,
		booking:   eb.Booking,
		flat:      eb.Flat,
		flatKnown: eb.FlatKnown,
		onRefresh: onRefresh,
	}
}

// Cancel runs one cancel attempt. Success sets the success message and
// triggers the parent refresh; failure sets the failure message and does not.
// Re-entry while an attempt is in flight is ignored.
func (c *BookingCard) Cancel(ctx context.Context) {
	if c.cancelling {
		return
	}
	c.cancelling = true
	c.message = ""

	err := c.api.CancelBooking(ctx, c.booking.ID)
	c.cancelling = false
	if err != nil {
		c.message = failMessage(err)
		return
	}
	c.message = msgCancelled
	if c.onRefresh != nil {
		c.onRefresh(ctx)
	}
}

func (c *BookingCard) Booking() domain.Booking  { return c.booking }
func (c *BookingCard) Flat() domain.FlatSummary { return c.flat }
func (c *BookingCard) FlatKnown() bool          { return c.flatKnown }
func (c *BookingCard) Cancelling() bool         { return c.cancelling }
func (c *BookingCard) Message() string          { return c.message }

// DetailTarget is the flat id the "view flat" action navigates to.
func (c *BookingCard) DetailTarget() int64 { return c.booking.FlatID }
