// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Error messages.
const (
	msgInternalError       = "Something went wrong. Please try again later."
	msgRemoteUnavailable   = "The Quran service is not answering right now. Please try again in a moment."
	msgOutOfRange          = "That number is out of range. Surahs go from 1 to 114, pages from 1 to 604 and juz from 1 to 30."
	msgInvalidReference    = "I could not read that reference. Use <code>2:255</code> for surah and ayah, or a number from 1 to 6236."
	msgUseSurah            = "Use: /surah 36"
	msgUsePage             = "Use: /page 1"
	msgUseJuz              = "Use: /juz 30"
	msgUseAyah             = "Use: /ayah 2:255"
	msgUseAudio            = "Use: /audio 2:255"
	msgUseSearch           = "Use: /search mercy or /search mercy 2 to look in one surah."
	msgNoMatches           = "No ayahs matched your search."
	msgNotFound            = "That ayah does not exist. Check the surah and ayah numbers."
	msgUnknownEdition      = "That edition is not available."
	msgSettingsUnavailable = "Could not load your settings. Please try again later."
	msgUnknownCommand      = "Unknown command. Send /help to see what I can do."
)

const msgWelcome = `<b>As-salamu alaykum!</b>

I can read the Quran with you, in Arabic with a translation of your choice, and send you an ayah every morning.

Send a reference like <code>2:255</code> to start, or /help for all commands.`

const msgHelp = `<b>Reading</b>
/surahs - list all surahs
/surah N - read surah N
/page N - read mushaf page N (1-604)
/juz N - read juz N (1-30)
/ayah 2:255 - one ayah (a number from 1 to 6236 also works)
/random - a random ayah

<b>Listening</b>
/audio 2:255 - recitation of one ayah

<b>Searching</b>
/search WORD - search your translation
/search WORD N - search in surah N only

<b>Preferences</b>
/settings - translation, reciter and daily ayah`

const (
	lrm = "\u200E"
	// Telegram media groups hold at most ten items.
	maxMediaGroup = 10
)

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func bold(s string) string {
	return "<b>" + esc(s) + "</b>"
}

func italic(s string) string {
	return "<i>" + esc(s) + "</i>"
}

// truncate cuts s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return msg
}

func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	return edit
}
