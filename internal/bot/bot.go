// Package bot is the interactive front-end: a Telegram long-poll loop that
// routes chats between the screens (search, flat detail, booking form,
// booking list). Each chat owns its own session and request lifecycle.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/JianhaoLuo18/UniFrontend/internal/adapters/observability"
	"github.com/JianhaoLuo18/UniFrontend/internal/app"
	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
)

const (
	stateMenu           = "menu"
	stateFilterLocation = "filter_location"
	stateFilterMinPrice = "filter_min_price"
	stateFilterMaxPrice = "filter_max_price"
	stateFilterRooms    = "filter_rooms"
	stateFilterDistance = "filter_distance"
	stateFormStart      = "form_start_date"
	stateFormEnd        = "form_end_date"
	stateFormEmail      = "form_email"
)

type Bot struct {
	tg        *tgbotapi.BotAPI
	api       domain.FlatAPI
	prefs     domain.PrefStore
	summaries *app.SummaryService
	logger    zerolog.Logger

	sessions map[int64]*session
}

func New(token string, api domain.FlatAPI, prefs domain.PrefStore, summaries *app.SummaryService, logger zerolog.Logger) (*Bot, error) {
	tg, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		tg:        tg,
		api:       api,
		prefs:     prefs,
		summaries: summaries,
		logger:    logger,
		sessions:  make(map[int64]*session),
	}, nil
}

// Run blocks on the long-poll update loop until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.tg.GetUpdatesChan(u)

	b.logger.Info().Str("account", b.tg.Self.UserName).Msg("bot authorized")

	for {
		select {
		case <-ctx.Done():
			b.tg.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			switch {
			case update.CallbackQuery != nil:
				observability.ObserveBotUpdate("callback")
				b.handleCallback(ctx, update)
			case update.Message != nil:
				observability.ObserveBotUpdate("message")
				b.handleMessage(ctx, update)
			default:
				observability.ObserveBotUpdate("skip")
			}
		}
	}
}

func (b *Bot) session(chatID int64) *session {
	s, ok := b.sessions[chatID]
	if !ok {
		s = newSession(b.api, b.prefs, b.summaries)
		b.sessions[chatID] = s
	}
	return s
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.tg.Send(c); err != nil {
		b.logger.Warn().Err(err).Msg("telegram send failed")
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}
