package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/devdanalmag/MakTab-platform/internal/config"
	"github.com/devdanalmag/MakTab-platform/internal/delivery/telegram"
	"github.com/devdanalmag/MakTab-platform/internal/infra/postgres"
	"github.com/devdanalmag/MakTab-platform/internal/infra/postgres/repository"
	"github.com/devdanalmag/MakTab-platform/internal/logger"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
	"github.com/devdanalmag/MakTab-platform/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := cfg.Telegram.Validate(); err != nil {
		lg.Fatal("telegram token is not set", zap.Error(err))
	}
	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("database url is not set", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		lg.Fatal("failed to prepare database schema", zap.Error(err))
	}

	defaults := quran.Editions{
		Source:      cfg.Quran.SourceEdition,
		Translation: cfg.Quran.TranslationEdition,
		Reciter:     cfg.Quran.Reciter,
	}
	client := quran.NewClient(
		quran.WithBaseURL(cfg.Quran.BaseURL),
		quran.WithTimeout(cfg.Quran.Timeout),
		quran.WithUserAgent(cfg.Quran.UserAgent),
		quran.WithEditions(defaults),
		quran.WithLogger(lg.Named("quran")),
	)
	// Fill in anything the config left empty.
	defaults = client.Editions()

	// Initialize repositories and services.
	settingsRepo := repository.NewSettingsRepository(pool)
	subscriberRepo := repository.NewSubscriberRepository(pool)
	txRepos := func(tx pgx.Tx) (service.UserRepository, service.SettingsRepository) {
		return repository.NewUserRepository(tx), repository.NewSettingsRepository(tx)
	}

	userService := service.NewUserService(postgres.NewTransactor(pool), txRepos, defaults)
	settingsService := service.NewSettingsService(settingsRepo, defaults)
	readerService := service.NewReaderService(client, settingsService, lg.Named("reader"))
	dailyService := service.NewDailyAyahService(
		client,
		subscriberRepo,
		userService,
		service.DailyAyahConfig{
			Schedule:      cfg.Daily.Schedule,
			MaxConcurrent: cfg.Daily.MaxConcurrent,
		},
		lg.Named("daily"),
	)

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "surahs", Description: "List all surahs"},
		{Command: "surah", Description: "Read a surah (usage: /surah 36)"},
		{Command: "page", Description: "Read a mushaf page (usage: /page 50)"},
		{Command: "juz", Description: "Read a juz (usage: /juz 30)"},
		{Command: "ayah", Description: "Show one ayah (usage: /ayah 2:255)"},
		{Command: "audio", Description: "Listen to an ayah (usage: /audio 2:255)"},
		{Command: "search", Description: "Search the translation (usage: /search mercy)"},
		{Command: "random", Description: "Show a random ayah"},
		{Command: "settings", Description: "Translation, reciter and daily ayah"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}
	defer bot.StopReceivingUpdates()

	handler := telegram.NewHandler(
		bot,
		lg.Named("telegram"),
		readerService,
		userService,
		settingsService,
		cfg.Telegram.AyahsPerMessage,
	)
	dailyService.SetNotifier(handler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return handler.Run(gctx)
	})
	if cfg.Daily.Enabled {
		g.Go(func() error {
			return dailyService.Start(gctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("bot stopped with error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}
