package screens

import (
	"context"

	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

// Search is the flat search/list screen: collect filter criteria, run one
// fetch, render the result list. Zero-valued filter fields mean "no
// constraint" and are omitted from the request.
type Search struct {
	api domain.FlatAPI

	Filters domain.SearchFilters

	phase  Phase
	flats  []domain.Flat
	errMsg string
}

func NewSearch(api domain.FlatAPI) *Search { return &Search{api: api} }

// Submit runs one search. The result replaces the prior list entirely; there
// is no merge, append or pagination. A failure leaves the screen
// re-attemptable with the message shown.
func (s *Search) Submit(ctx context.Context) {
	s.phase = PhaseLoading
	s.errMsg = ""

	flats, err := s.api.SearchFlats(ctx, s.Filters)
	if err != nil {
		s.phase = PhaseFailed
		s.errMsg = failMessage(err)
		return
	}
	s.flats = flats
	s.phase = PhaseLoaded
}

func (s *Search) Phase() Phase         { return s.phase }
func (s *Search) Flats() []domain.Flat { return s.flats }
func (s *Search) ErrorMessage() string { return s.errMsg }
