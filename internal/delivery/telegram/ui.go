package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

// buildPageKeyboard builds a pagination row, adding extra rows below it.
// It returns nil when there is nothing to show.
func buildPageKeyboard(page, totalPages int, prevData, nextData string, extra ...[]tgbotapi.InlineKeyboardButton) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if totalPages > 1 {
		var row []tgbotapi.InlineKeyboardButton
		if page > 0 {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", prevData))
		}
		if page < totalPages-1 {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", nextData))
		}
		rows = append(rows, row)
	}

	for _, row := range extra {
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// buildReadKeyboard builds the keyboard under one page of a surah, mushaf page or juz.
func buildReadKeyboard(kind string, number, page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	var listen []tgbotapi.InlineKeyboardButton
	if kind == kindSurah {
		listen = tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎧 Listen", buildListenCallback(number, page)),
		)
	}

	return buildPageKeyboard(
		page,
		totalPages,
		buildReadCallback(kind, number, page-1),
		buildReadCallback(kind, number, page+1),
		listen,
	)
}

// buildAyahKeyboard offers the recitation of a single ayah.
func buildAyahKeyboard(audioURL string) *tgbotapi.InlineKeyboardMarkup {
	if audioURL == "" {
		return nil
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🎧 Listen", audioURL),
		),
	)
	return &kb
}

// buildSettingsKeyboard builds main settings keyboard.
func buildSettingsKeyboard(settings *entities.UserSettings) tgbotapi.InlineKeyboardMarkup {
	daily := "🔔 Turn daily ayah off"
	if !settings.DailyAyah {
		daily = "🔕 Turn daily ayah on"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 Translation", buildSettingsCallback(settingsTranslation)),
			tgbotapi.NewInlineKeyboardButtonData("🎙 Reciter", buildSettingsCallback(settingsReciter)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(daily, buildSettingsCallback(settingsDaily)),
		),
	)
}

// buildOptionsKeyboard lists selectable editions, marking the current one.
func buildOptionsKeyboard(subAction string, options []quran.EditionOption, current string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options)+1)
	for _, opt := range options {
		label := opt.Label
		if opt.ID == current {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildSettingsCallback(subAction, opt.ID)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
