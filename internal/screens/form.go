package screens

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

type FormState int

const (
	FormEditing FormState = iota
	FormSubmitting
	FormError
	FormDone
)

const (
	msgDatesEmpty  = "Start Date and End Date cannot be empty."
	msgBadEmail    = "Please enter a valid email address."
	msgFlatMissing = "Flat ID is missing."
)

// BookingForm collects the date range and email for one flat and submits the
// whole booking atomically as one request. Validation failures never reach
// the network; request failures keep the form open with the backend's message
// retained until the next attempt.
type BookingForm struct {
	api   domain.FlatAPI
	prefs domain.PrefStore

	FlatID    int64
	UserID    int64
	Email     string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD

	state   FormState
	message string
	created domain.Booking
}

// NewBookingForm prefills the email from the preference store, falling back
// to the demo default when nothing is stored yet.
func NewBookingForm(api domain.FlatAPI, prefs domain.PrefStore, flatID int64) *BookingForm {
	f := &BookingForm{api: api, prefs: prefs, FlatID: flatID, UserID: domain.DefaultUserID}
	if email, ok, err := prefs.LoadEmail(); err != nil {
		log.Warn().Err(err).Msg("loading stored email failed")
		f.Email = domain.DefaultUserEmail
	} else if ok {
		f.Email = email
	} else {
		f.Email = domain.DefaultUserEmail
	}
	return f
}

// Submit validates the form and, when the guards pass, posts the booking.
// Guard failures keep the form in editing with the message set; the backend's
// start<=end invariant is deliberately not checked here.
func (f *BookingForm) Submit(ctx context.Context) {
	f.message = ""

	if f.StartDate == "" || f.EndDate == "" {
		f.state = FormEditing
		f.message = msgDatesEmpty
		return
	}
	if !domain.ValidEmail(f.Email) {
		f.state = FormEditing
		f.message = msgBadEmail
		return
	}
	if f.FlatID == 0 {
		f.state = FormEditing
		f.message = msgFlatMissing
		return
	}

	f.state = FormSubmitting
	userID := f.UserID
	if userID == 0 {
		userID = domain.DefaultUserID
	}
	created, err := f.api.CreateBooking(ctx, domain.Booking{
		FlatID:    f.FlatID,
		UserID:    userID,
		UserEmail: f.Email,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    domain.StatusActive,
		System:    domain.SystemTag,
	})
	if err != nil {
		f.state = FormError
		f.message = failMessage(err)
		return
	}

	// Persisting the email is an awaited step with its own failure handling,
	// but a failed save never blocks a booking that already succeeded.
	if err := f.prefs.SaveEmail(f.Email); err != nil {
		log.Warn().Err(err).Msg("persisting email failed")
	}

	f.created = created
	f.state = FormDone
}

func (f *BookingForm) State() FormState { return f.state }
func (f *BookingForm) Message() string  { return f.message }

// Created returns the backend's booking record once the form is done.
func (f *BookingForm) Created() (domain.Booking, bool) {
	return f.created, f.state == FormDone
}
