package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type ReaderService interface {
	Surahs(ctx context.Context) ([]entities.SurahMeta, error)
	Surah(ctx context.Context, userID int64, number int) (*entities.Surah, error)
	SurahAudio(ctx context.Context, userID int64, number int) (*entities.Surah, error)
	Page(ctx context.Context, userID int64, number int) (*entities.Section, error)
	Juz(ctx context.Context, userID int64, number int) (*entities.Section, error)
	Ayah(ctx context.Context, userID int64, ref string) (*entities.Ayah, string, error)
	RandomAyah(ctx context.Context, userID int64) (*entities.Ayah, string, error)
	AudioURL(ctx context.Context, userID int64, ref string) (string, error)
	Search(ctx context.Context, userID int64, keyword string, scope quran.SearchScope) (*entities.SearchResult, error)
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) (bool, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateTranslation(ctx context.Context, userID int64, edition string) error
	UpdateReciter(ctx context.Context, userID int64, reciter string) error
	ToggleDailyAyah(ctx context.Context, userID int64) (bool, error)
}

type Handler struct {
	bot             Bot
	logger          *zap.Logger
	readerService   ReaderService
	userService     UserService
	settingsService SettingsService
	ayahsPerMessage int
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	readerService ReaderService,
	userService UserService,
	settingsService SettingsService,
	ayahsPerMessage int,
) *Handler {
	if ayahsPerMessage <= 0 || ayahsPerMessage > maxMediaGroup {
		ayahsPerMessage = maxMediaGroup
	}

	return &Handler{
		bot:             bot,
		logger:          logger,
		readerService:   readerService,
		userService:     userService,
		settingsService: settingsService,
		ayahsPerMessage: ayahsPerMessage,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if _, err := h.userService.EnsureUser(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if !update.Message.IsCommand() {
		_ = h.withErrorHandling(h.handleText(from.ID, update.Message.Text))(ctx, chatID)
		return
	}

	args := update.Message.CommandArguments()

	var fn HandlerFunc
	switch update.Message.Command() {
	case "start":
		fn = h.handleStart()
	case "help":
		fn = h.handleHelp()
	case "surahs":
		fn = h.handleSurahs()
	case "surah":
		fn = h.handleSurah(from.ID, args)
	case "page":
		fn = h.handlePage(from.ID, args)
	case "juz":
		fn = h.handleJuz(from.ID, args)
	case "ayah":
		fn = h.handleAyah(from.ID, args)
	case "audio":
		fn = h.handleAudio(from.ID, args)
	case "search":
		fn = h.handleSearch(from.ID, args)
	case "random":
		fn = h.handleRandom(from.ID)
	case "settings":
		fn = h.handleSettings(from.ID)
	default:
		fn = h.reply(msgUnknownCommand)
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	msg := newHTMLMessage(chatID, text)
	_ = h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
