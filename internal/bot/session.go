package bot

import (
	"github.com/JianhaoLuo18/UniFrontend/internal/app"
	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
	"github.com/JianhaoLuo18/UniFrontend/internal/screens"
)

// session is one chat's navigation state plus its screen instances. Screens
// are created lazily when the chat first navigates to them; the booking form
// is recreated per target flat.
type session struct {
	api       domain.FlatAPI
	prefs     domain.PrefStore
	summaries *app.SummaryService

	state  string
	search *screens.Search
	detail *screens.FlatDetail
	form   *screens.BookingForm
	list   *screens.BookingList
}

func newSession(api domain.FlatAPI, prefs domain.PrefStore, summaries *app.SummaryService) *session {
	return &session{api: api, prefs: prefs, summaries: summaries, state: stateMenu}
}

func (s *session) reset() {
	s.state = stateMenu
	s.search = nil
	s.detail = nil
	s.form = nil
}

func (s *session) searchScreen() *screens.Search {
	if s.search == nil {
		s.search = screens.NewSearch(s.api)
	}
	return s.search
}

func (s *session) detailScreen() *screens.FlatDetail {
	if s.detail == nil {
		s.detail = screens.NewFlatDetail(s.api)
	}
	return s.detail
}

func (s *session) listScreen() *screens.BookingList {
	if s.list == nil {
		s.list = screens.NewBookingList(s.api, s.prefs, s.summaries)
	}
	return s.list
}

func (s *session) startBookingForm(flatID int64) *screens.BookingForm {
	s.form = screens.NewBookingForm(s.api, s.prefs, flatID)
	return s.form
}
