package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

func (h *Handler) handleStart() HandlerFunc {
	return h.reply(msgWelcome)
}

func (h *Handler) handleHelp() HandlerFunc {
	return h.reply(msgHelp)
}

// handleText treats a bare reference such as "2:255" or "262" as an ayah request.
func (h *Handler) handleText(userID int64, text string) HandlerFunc {
	text = strings.TrimSpace(text)
	if _, err := quran.ResolveAyahReference(text); err != nil {
		return h.reply(msgUnknownCommand)
	}
	return h.handleAyah(userID, text)
}

func (h *Handler) handleSurahs() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		surahs, err := h.readerService.Surahs(ctx)
		if err != nil {
			return err
		}

		text, totalPages := renderSurahList(surahs, 0)
		msg := newHTMLMessage(chatID, text)
		if kb := buildPageKeyboard(0, totalPages, buildListCallback(-1), buildListCallback(1)); kb != nil {
			msg.ReplyMarkup = *kb
		}

		return h.send(msg)
	}
}

func (h *Handler) handleSurah(userID int64, args string) HandlerFunc {
	number, ok := parseNumberArg(args)
	if !ok {
		return h.reply(msgUseSurah)
	}

	return func(ctx context.Context, chatID int64) error {
		text, kb, err := h.renderRead(ctx, userID, kindSurah, number, 0)
		if err != nil {
			return err
		}
		return h.sendWithKeyboard(chatID, text, kb)
	}
}

func (h *Handler) handlePage(userID int64, args string) HandlerFunc {
	number, ok := parseNumberArg(args)
	if !ok {
		return h.reply(msgUsePage)
	}

	return func(ctx context.Context, chatID int64) error {
		text, kb, err := h.renderRead(ctx, userID, kindPage, number, 0)
		if err != nil {
			return err
		}
		return h.sendWithKeyboard(chatID, text, kb)
	}
}

func (h *Handler) handleJuz(userID int64, args string) HandlerFunc {
	number, ok := parseNumberArg(args)
	if !ok {
		return h.reply(msgUseJuz)
	}

	return func(ctx context.Context, chatID int64) error {
		text, kb, err := h.renderRead(ctx, userID, kindJuz, number, 0)
		if err != nil {
			return err
		}
		return h.sendWithKeyboard(chatID, text, kb)
	}
}

func (h *Handler) handleAyah(userID int64, args string) HandlerFunc {
	ref := strings.TrimSpace(args)
	if ref == "" {
		return h.reply(msgUseAyah)
	}

	return func(ctx context.Context, chatID int64) error {
		ayah, audioURL, err := h.readerService.Ayah(ctx, userID, ref)
		if err != nil {
			return err
		}
		return h.sendWithKeyboard(chatID, formatAyah(*ayah, true), buildAyahKeyboard(audioURL))
	}
}

func (h *Handler) handleRandom(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		ayah, audioURL, err := h.readerService.RandomAyah(ctx, userID)
		if err != nil {
			return err
		}
		return h.sendWithKeyboard(chatID, formatAyah(*ayah, true), buildAyahKeyboard(audioURL))
	}
}

// handleAudio sends the recitation of one ayah. Pair references need no
// remote lookup; a global number is resolved through the ayah first.
func (h *Handler) handleAudio(userID int64, args string) HandlerFunc {
	ref := strings.TrimSpace(args)
	if ref == "" {
		return h.reply(msgUseAudio)
	}

	return func(ctx context.Context, chatID int64) error {
		resolved, err := quran.ResolveAyahReference(ref)
		if err != nil {
			return err
		}

		label, url := ref, ""
		if resolved.IsPair() {
			url, err = h.readerService.AudioURL(ctx, userID, ref)
			if err != nil {
				return err
			}
		} else {
			ayah, audioURL, err := h.readerService.Ayah(ctx, userID, ref)
			if err != nil {
				return err
			}
			label, url = ayah.Ref(), audioURL
		}

		audio := tgbotapi.NewAudio(chatID, tgbotapi.FileURL(url))
		audio.Caption = audioCaption(label)
		return h.send(audio)
	}
}

func (h *Handler) handleSearch(userID int64, args string) HandlerFunc {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return h.reply(msgUseSearch)
	}

	keyword := strings.Join(fields, " ")
	scope := quran.SearchAll

	// A trailing number narrows the search to one surah.
	if len(fields) > 1 {
		if parsed, err := quran.ParseSearchScope(fields[len(fields)-1]); err == nil {
			keyword = strings.Join(fields[:len(fields)-1], " ")
			scope = parsed
		}
	}

	return func(ctx context.Context, chatID int64) error {
		result, err := h.readerService.Search(ctx, userID, keyword, scope)
		if err != nil {
			if quran.IsNotFound(err) {
				return h.send(newHTMLMessage(chatID, msgNoMatches))
			}
			return err
		}
		if result.Count == 0 {
			return h.send(newHTMLMessage(chatID, msgNoMatches))
		}

		return h.send(newHTMLMessage(chatID, renderSearch(keyword, scope, result)))
	}
}

func (h *Handler) handleSettings(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			h.logger.Error("failed to get settings", zap.Int64("user_id", userID), zap.Error(err))
			return h.send(newHTMLMessage(chatID, msgSettingsUnavailable))
		}

		msg := newHTMLMessage(chatID, renderSettings(settings))
		msg.ReplyMarkup = buildSettingsKeyboard(settings)
		return h.send(msg)
	}
}

// renderRead fetches a surah, mushaf page or juz and renders one page of it.
func (h *Handler) renderRead(ctx context.Context, userID int64, kind string, number, page int) (string, *tgbotapi.InlineKeyboardMarkup, error) {
	var (
		header string
		pages  []ayahPage
	)

	switch kind {
	case kindSurah:
		surah, err := h.readerService.Surah(ctx, userID, number)
		if err != nil {
			return "", nil, err
		}
		header = surahHeader(surah.Meta())
		pages = paginateAyahs(surah.Ayahs, h.ayahsPerMessage, false)

	case kindPage:
		section, err := h.readerService.Page(ctx, userID, number)
		if err != nil {
			return "", nil, err
		}
		header = sectionHeader(kind, section)
		pages = paginateAyahs(section.Ayahs, h.ayahsPerMessage, true)

	case kindJuz:
		section, err := h.readerService.Juz(ctx, userID, number)
		if err != nil {
			return "", nil, err
		}
		header = sectionHeader(kind, section)
		pages = paginateAyahs(section.Ayahs, h.ayahsPerMessage, true)

	default:
		return "", nil, errBadCallback
	}

	if len(pages) == 0 {
		return header, nil, nil
	}
	if page < 0 || page >= len(pages) {
		return "", nil, errBadCallback
	}

	text := pages[page].Text + pageFooter(page, len(pages))
	if page == 0 {
		text = header + text
	}

	return text, buildReadKeyboard(kind, number, page, len(pages)), nil
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	msg := newHTMLMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	return h.send(msg)
}
