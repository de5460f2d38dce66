package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/JianhaoLuo18/UniFrontend/internal/adapters/flatly"
	httpserver "github.com/JianhaoLuo18/UniFrontend/internal/adapters/http_server"
	"github.com/JianhaoLuo18/UniFrontend/internal/adapters/observability"
	redisad "github.com/JianhaoLuo18/UniFrontend/internal/adapters/redis"
	"github.com/JianhaoLuo18/UniFrontend/internal/app"
	"github.com/JianhaoLuo18/UniFrontend/internal/bot"
	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
	"github.com/JianhaoLuo18/UniFrontend/internal/prefs"
	"github.com/JianhaoLuo18/UniFrontend/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.BotToken == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN is required")
	}

	client, err := flatly.New(cfg.BackendBase, cfg.HTTPTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("backend client init failed")
	}

	prefsPath := cfg.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	store := prefs.New(prefsPath)

	// summary cache is optional; without Redis every lookup goes to the backend
	var cache domain.Cache = redisad.Noop{}
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	summaries := app.NewSummaryService(client, cache, cfg.CacheTTL, cfg.EnrichWorkers)

	reg := observability.InitRegistry()
	httpserver.Serve(cfg.OpsAddr, reg)

	b, err := bot.New(cfg.BotToken, client, store, summaries, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("bot init failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("backend", cfg.BackendBase).Str("prefs", prefsPath).Msg("flatly client starting")
	b.Run(ctx)
	log.Info().Msg("shutdown complete")
}
