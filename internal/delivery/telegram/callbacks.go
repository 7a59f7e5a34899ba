package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

// errMessageNotModified is what Telegram answers when an edit changes nothing.
const errMessageNotModified = "message is not modified"

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer h.answerCallback(cb.ID, "")

	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	userID := cb.From.ID
	data := decodeCallback(cb.Data)

	var err error
	switch data.Action {
	case actionRead:
		err = h.handleReadCallback(ctx, userID, chatID, messageID, data)
	case actionList:
		err = h.handleListCallback(ctx, chatID, messageID, data)
	case actionListen:
		err = h.handleListenCallback(ctx, userID, chatID, data)
	case actionSettings:
		err = h.handleSettingsCallback(ctx, userID, chatID, messageID, data)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		return
	}

	if err == nil {
		return
	}

	if errors.Is(err, errBadCallback) {
		h.logger.Warn("invalid callback data", zap.String("data", cb.Data))
		return
	}

	h.logger.Error("callback error",
		zap.Int64("user_id", userID),
		zap.String("data", cb.Data),
		zap.Error(err),
	)
	h.sendError(chatID, userMessage(err))
}

func (h *Handler) handleReadCallback(ctx context.Context, userID, chatID int64, messageID int, data callbackData) error {
	if len(data.Params) != 3 {
		return errBadCallback
	}

	kind := data.Params[0]
	number, err := data.intParam(1)
	if err != nil {
		return err
	}
	page, err := data.intParam(2)
	if err != nil {
		return err
	}

	text, kb, err := h.renderRead(ctx, userID, kind, number, page)
	if err != nil {
		return err
	}

	return h.edit(chatID, messageID, text, kb)
}

func (h *Handler) handleListCallback(ctx context.Context, chatID int64, messageID int, data callbackData) error {
	page, err := data.intParam(0)
	if err != nil {
		return err
	}

	surahs, err := h.readerService.Surahs(ctx)
	if err != nil {
		return err
	}

	text, totalPages := renderSurahList(surahs, page)
	if text == "" {
		return errBadCallback
	}

	kb := buildPageKeyboard(page, totalPages, buildListCallback(page-1), buildListCallback(page+1))
	return h.edit(chatID, messageID, text, kb)
}

// handleListenCallback sends the recitation of the ayahs shown on one page of a surah.
func (h *Handler) handleListenCallback(ctx context.Context, userID, chatID int64, data callbackData) error {
	number, err := data.intParam(0)
	if err != nil {
		return err
	}
	page, err := data.intParam(1)
	if err != nil {
		return err
	}

	// Page boundaries come from the text edition so they match what the user sees.
	surah, err := h.readerService.Surah(ctx, userID, number)
	if err != nil {
		return err
	}
	pages := paginateAyahs(surah.Ayahs, h.ayahsPerMessage, false)
	if page >= len(pages) {
		return errBadCallback
	}

	recited, err := h.readerService.SurahAudio(ctx, userID, number)
	if err != nil {
		return err
	}

	bounds := pages[page]
	end := min(bounds.End, len(recited.Ayahs))

	var media []any
	for _, ayah := range recited.Ayahs[bounds.Start:end] {
		if ayah.Audio == "" {
			continue
		}
		audio := tgbotapi.NewInputMediaAudio(tgbotapi.FileURL(ayah.Audio))
		audio.Caption = audioCaption(ayah.Ref())
		media = append(media, audio)
	}

	if len(media) == 0 {
		return h.send(newHTMLMessage(chatID, msgRemoteUnavailable))
	}

	if _, err := h.bot.Request(tgbotapi.NewMediaGroup(chatID, media)); err != nil {
		return err
	}

	return nil
}

func (h *Handler) handleSettingsCallback(ctx context.Context, userID, chatID int64, messageID int, data callbackData) error {
	if len(data.Params) == 0 {
		return errBadCallback
	}

	sub := data.Params[0]
	value := ""
	if len(data.Params) > 1 {
		value = data.Params[1]
	}

	switch {
	case sub == settingsTranslation && value == "":
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		kb := buildOptionsKeyboard(settingsTranslation, quran.Translations(), settings.TranslationEdition)
		return h.edit(chatID, messageID, bold("🌐 Choose a translation"), &kb)

	case sub == settingsReciter && value == "":
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		kb := buildOptionsKeyboard(settingsReciter, quran.Reciters(), settings.Reciter)
		return h.edit(chatID, messageID, bold("🎙 Choose a reciter"), &kb)

	case sub == settingsTranslation:
		if err := h.settingsService.UpdateTranslation(ctx, userID, value); err != nil {
			return err
		}

	case sub == settingsReciter:
		if err := h.settingsService.UpdateReciter(ctx, userID, value); err != nil {
			return err
		}

	case sub == settingsDaily:
		if _, err := h.settingsService.ToggleDailyAyah(ctx, userID); err != nil {
			return err
		}

	case sub != settingsMenu:
		return errBadCallback
	}

	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	kb := buildSettingsKeyboard(settings)
	return h.edit(chatID, messageID, renderSettings(settings), &kb)
}

func (h *Handler) edit(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	edit := newEdit(chatID, messageID, text)
	if kb != nil {
		edit.ReplyMarkup = kb
	}

	if _, err := h.bot.Send(edit); err != nil {
		var tgErr *tgbotapi.Error
		if errors.As(err, &tgErr) && containsFold(tgErr.Message, errMessageNotModified) {
			return nil
		}
		return err
	}

	return nil
}

func (h *Handler) answerCallback(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
