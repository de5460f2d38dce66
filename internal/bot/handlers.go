package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
	"github.com/JianhaoLuo18/UniFrontend/internal/screens"
)

const (
	btnSearch   = "🔍 Search flats"
	btnBookings = "📋 My bookings"

	// skipToken leaves a filter unconstrained or keeps a prefilled value.
	skipToken = "-"
)

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)
	sess := b.session(chatID)

	switch {
	case text == "/start" || strings.EqualFold(text, "reset"):
		sess.reset()
		b.showMenu(chatID, "Welcome to Flatly! What would you like to do?")

	case text == btnSearch:
		sess.searchScreen().Filters = domain.SearchFilters{}
		sess.state = stateFilterLocation
		b.sendText(chatID, "Where are you looking? Send a location, or - for anywhere.")

	case text == btnBookings:
		b.showBookings(ctx, chatID, sess)

	default:
		b.handleStateInput(ctx, chatID, sess, text)
	}
}

func (b *Bot) handleStateInput(ctx context.Context, chatID int64, sess *session, text string) {
	switch sess.state {
	case stateFilterLocation:
		if text != skipToken {
			sess.searchScreen().Filters.Location = text
		}
		sess.state = stateFilterMinPrice
		b.sendText(chatID, "Minimum monthly price, or - for no minimum.")

	case stateFilterMinPrice:
		n, err := parseOptionalInt(text)
		if err != nil {
			b.sendText(chatID, "Please send a whole number, or - to skip.")
			return
		}
		sess.searchScreen().Filters.MinPrice = n
		sess.state = stateFilterMaxPrice
		b.sendText(chatID, "Maximum monthly price, or - for no maximum.")

	case stateFilterMaxPrice:
		n, err := parseOptionalInt(text)
		if err != nil {
			b.sendText(chatID, "Please send a whole number, or - to skip.")
			return
		}
		sess.searchScreen().Filters.MaxPrice = n
		sess.state = stateFilterRooms
		b.sendText(chatID, "How many rooms? Send a number, or - for any.")

	case stateFilterRooms:
		n, err := parseOptionalInt(text)
		if err != nil {
			b.sendText(chatID, "Please send a whole number, or - to skip.")
			return
		}
		sess.searchScreen().Filters.RoomNumber = n
		sess.state = stateFilterDistance
		b.sendText(chatID, "Maximum distance in km, or - for any.")

	case stateFilterDistance:
		f, err := parseOptionalFloat(text)
		if err != nil {
			b.sendText(chatID, "Please send a number, or - to skip.")
			return
		}
		sess.searchScreen().Filters.MaxDistance = f
		sess.state = stateMenu
		b.runSearch(ctx, chatID, sess)

	case stateFormStart:
		if sess.form == nil {
			b.showMenu(chatID, "Let's start over.")
			return
		}
		sess.form.StartDate = optionalText(text)
		sess.state = stateFormEnd
		b.sendText(chatID, "End date (YYYY-MM-DD):")

	case stateFormEnd:
		sess.form.EndDate = optionalText(text)
		sess.state = stateFormEmail
		b.sendText(chatID, "Your email is "+sess.form.Email+". Send - to keep it, or send another address.")

	case stateFormEmail:
		if text != skipToken {
			sess.form.Email = text
		}
		sess.state = stateMenu
		b.submitBooking(ctx, chatID, sess)

	default:
		b.showMenu(chatID, "Pick an option below.")
	}
}

func (b *Bot) runSearch(ctx context.Context, chatID int64, sess *session) {
	s := sess.searchScreen()
	s.Submit(ctx)

	switch s.Phase() {
	case screens.PhaseFailed:
		b.sendText(chatID, "Search failed: "+s.ErrorMessage())
	case screens.PhaseLoaded:
		if len(s.Flats()) == 0 {
			if s.Filters.Empty() {
				b.sendText(chatID, "No flats found.")
			} else {
				b.sendText(chatID, "No flats match your filters.")
			}
			return
		}
		for _, f := range s.Flats() {
			msg := tgbotapi.NewMessage(chatID, flatLine(f))
			msg.ReplyMarkup = flatKeyboard(f.ID)
			b.send(msg)
		}
	}
}

func (b *Bot) submitBooking(ctx context.Context, chatID int64, sess *session) {
	f := sess.form
	f.Submit(ctx)

	switch f.State() {
	case screens.FormDone:
		created, _ := f.Created()
		b.showMenu(chatID, "✅ Booking #"+strconv.FormatInt(created.ID, 10)+" confirmed for "+
			created.StartDate+" – "+created.EndDate+".")

	case screens.FormEditing:
		// a validation guard failed before any network call: re-collect dates
		sess.state = stateFormStart
		b.sendText(chatID, f.Message()+"\nLet's try again. Start date (YYYY-MM-DD):")

	default:
		// the backend rejected the booking; keep the form open for re-submission
		msg := tgbotapi.NewMessage(chatID, f.Message())
		msg.ReplyMarkup = retryKeyboard()
		b.send(msg)
	}
}

func (b *Bot) showBookings(ctx context.Context, chatID int64, sess *session) {
	l := sess.listScreen()
	l.Load(ctx)
	b.renderBookings(chatID, sess)
}

func optionalText(text string) string {
	if text == skipToken {
		return ""
	}
	return text
}

func parseOptionalInt(text string) (int, error) {
	if text == "" || text == skipToken {
		return 0, nil
	}
	return strconv.Atoi(text)
}

func parseOptionalFloat(text string) (float64, error) {
	if text == "" || text == skipToken {
		return 0, nil
	}
	return strconv.ParseFloat(text, 64)
}
