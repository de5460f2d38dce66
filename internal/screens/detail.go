package screens

import (
	"context"

	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

// FlatDetail fetches and renders one flat's full attribute list. The only
// forward action is handing the flat id to the booking form.
type FlatDetail struct {
	api domain.FlatAPI

	flatID int64
	phase  Phase
	flat   domain.Flat
	errMsg string
}

func NewFlatDetail(api domain.FlatAPI) *FlatDetail { return &FlatDetail{api: api} }

// Load fetches the flat. Callers re-invoke it whenever the target id changes.
func (d *FlatDetail) Load(ctx context.Context, flatID int64) {
	d.flatID = flatID
	d.phase = PhaseLoading
	d.errMsg = ""

	f, err := d.api.GetFlat(ctx, flatID)
	if err != nil {
		d.phase = PhaseFailed
		d.errMsg = failMessage(err)
		return
	}
	d.flat = f
	d.phase = PhaseLoaded
}

func (d *FlatDetail) Phase() Phase         { return d.phase }
func (d *FlatDetail) ErrorMessage() string { return d.errMsg }

// Flat returns the loaded flat; ok is false until a load succeeded.
func (d *FlatDetail) Flat() (domain.Flat, bool) {
	return d.flat, d.phase == PhaseLoaded
}

// BookingTarget is the flat id the "Book Now" action passes forward.
func (d *FlatDetail) BookingTarget() int64 { return d.flatID }
