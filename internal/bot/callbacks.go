package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JianhaoLuo18/UniFrontend/internal/screens"
)

const (
	cbMenu     = "menu"
	cbResubmit = "resubmit"
	cbRefresh  = "refresh"
)

func (b *Bot) handleCallback(ctx context.Context, update tgbotapi.Update) {
	cb := update.CallbackQuery
	// answer right away so the client stops showing the spinner
	if _, err := b.tg.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.logger.Warn().Err(err).Msg("callback answer failed")
	}
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	sess := b.session(chatID)

	kind, id, ok := parseCallback(cb.Data)
	if !ok {
		b.showMenu(chatID, "Pick an option below.")
		return
	}

	switch kind {
	case cbMenu:
		sess.reset()
		b.showMenu(chatID, "What would you like to do?")

	case cbRefresh:
		sess.listScreen().Refresh(ctx)
		b.renderBookings(chatID, sess)

	case cbResubmit:
		if sess.form == nil {
			b.showMenu(chatID, "There is no booking in progress.")
			return
		}
		b.submitBooking(ctx, chatID, sess)

	case "flat":
		b.showFlat(ctx, chatID, sess, id)

	case "book":
		form := sess.startBookingForm(id)
		sess.state = stateFormStart
		b.sendText(chatID, "Booking flat #"+strconv.FormatInt(id, 10)+" as "+form.Email+
			".\nStart date (YYYY-MM-DD):")

	case "cancel":
		card := findCard(sess.listScreen().Cards(), id)
		if card == nil {
			b.sendText(chatID, "That booking is no longer in the list.")
			return
		}
		card.Cancel(ctx) // a successful cancel refreshes the list screen
		b.sendText(chatID, card.Message())
		b.renderBookings(chatID, sess)
	}
}

func (b *Bot) showFlat(ctx context.Context, chatID int64, sess *session, flatID int64) {
	d := sess.detailScreen()
	d.Load(ctx, flatID)

	if d.Phase() != screens.PhaseLoaded {
		b.sendText(chatID, "Flat details not available.")
		return
	}
	f, _ := d.Flat()
	msg := tgbotapi.NewMessage(chatID, detailText(f))
	msg.ReplyMarkup = detailKeyboard(d.BookingTarget())
	b.send(msg)
}

// parseCallback splits "kind" or "kind:id" callback data.
func parseCallback(data string) (kind string, id int64, ok bool) {
	switch data {
	case cbMenu, cbResubmit, cbRefresh:
		return data, 0, true
	}
	i := strings.IndexByte(data, ':')
	if i <= 0 {
		return "", 0, false
	}
	kind = data[:i]
	switch kind {
	case "flat", "book", "cancel":
	default:
		return "", 0, false
	}
	id, err := strconv.ParseInt(data[i+1:], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return kind, id, true
}

func findCard(cards []*screens.BookingCard, bookingID int64) *screens.BookingCard {
	for _, c := range cards {
		if c.Booking().ID == bookingID {
			return c
		}
	}
	return nil
}
