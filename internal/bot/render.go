package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
	"github.com/JianhaoLuo18/UniFrontend/internal/screens"
)

func (b *Bot) showMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSearch),
			tgbotapi.NewKeyboardButton(btnBookings),
		),
	)
	b.send(msg)
}

func (b *Bot) renderBookings(chatID int64, sess *session) {
	l := sess.listScreen()

	switch {
	case l.NeedsEmail():
		b.sendText(chatID, "You haven't made a booking yet. Book a flat to see your active bookings here.")
	case l.Phase() == screens.PhaseFailed:
		b.sendText(chatID, "Could not load bookings: "+l.ErrorMessage())
	case l.Empty():
		b.sendText(chatID, "No active bookings found.")
	default:
		for _, card := range l.Cards() {
			msg := tgbotapi.NewMessage(chatID, cardText(card))
			msg.ReplyMarkup = cardKeyboard(card)
			b.send(msg)
		}
		refresh := tgbotapi.NewMessage(chatID, "That's all of them.")
		refresh.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", cbRefresh),
			),
		)
		b.send(refresh)
	}
}

func flatLine(f domain.Flat) string {
	var sb strings.Builder
	name := f.Name
	if name == "" {
		name = f.Location
	}
	sb.WriteString(name)
	sb.WriteString("\n📍 " + f.Location)
	sb.WriteString("\n💰 " + money(f.Price) + "/month")
	sb.WriteString("\n🚪 " + strconv.Itoa(f.RoomNumber) + " rooms")
	if f.Distance != nil {
		sb.WriteString("\n📏 " + trimFloat(*f.Distance) + " km away")
	}
	return sb.String()
}

func detailText(f domain.Flat) string {
	var sb strings.Builder
	sb.WriteString(flatLine(f))
	if f.Description != "" {
		sb.WriteString("\n\n" + f.Description)
	}
	sb.WriteString("\n\nAmenities:")
	if len(f.Amenities) == 0 {
		sb.WriteString("\n• No amenities listed.")
	} else {
		for _, a := range f.Amenities {
			sb.WriteString("\n• " + a)
		}
	}
	return sb.String()
}

func cardText(c *screens.BookingCard) string {
	bk := c.Booking()
	var sb strings.Builder
	sb.WriteString("Booking #" + strconv.FormatInt(bk.ID, 10) + " — " + c.Flat().Name)
	sb.WriteString("\n📅 " + bk.StartDate + " – " + bk.EndDate)
	sb.WriteString("\nStatus: " + bk.Status)
	if c.FlatKnown() && c.Flat().Image != "" {
		sb.WriteString("\n🖼 " + c.Flat().Image)
	}
	return sb.String()
}

func flatKeyboard(flatID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 View details", "flat:"+strconv.FormatInt(flatID, 10)),
			tgbotapi.NewInlineKeyboardButtonData("📝 Book now", "book:"+strconv.FormatInt(flatID, 10)),
		),
	)
}

func detailKeyboard(flatID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Book now", "book:"+strconv.FormatInt(flatID, 10)),
		),
	)
}

func cardKeyboard(c *screens.BookingCard) tgbotapi.InlineKeyboardMarkup {
	id := strconv.FormatInt(c.Booking().ID, 10)
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel booking", "cancel:"+id),
			tgbotapi.NewInlineKeyboardButtonData("🏠 View flat", "flat:"+strconv.FormatInt(c.DetailTarget(), 10)),
		),
	)
}

func retryKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Try again", cbResubmit),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to menu", cbMenu),
		),
	)
}

func money(v float64) string {
	if v == float64(int64(v)) {
		return "$" + strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("$%.2f", v)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
