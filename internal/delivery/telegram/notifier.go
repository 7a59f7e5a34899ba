package telegram

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/service"
)

// SendDailyAyah delivers the daily ayah. Chats that blocked the bot or no
// longer exist are reported as service.ErrRecipientUnavailable.
func (h *Handler) SendDailyAyah(chatID int64, payload entities.DailyAyahPayload) error {
	msg := newHTMLMessage(chatID, renderDailyAyah(payload))
	if kb := buildAyahKeyboard(payload.AudioURL); kb != nil {
		msg.ReplyMarkup = *kb
	}

	if _, err := h.bot.Send(msg); err != nil {
		if recipientGone(err) {
			return fmt.Errorf("send daily ayah to %d: %w", chatID, service.ErrRecipientUnavailable)
		}
		return fmt.Errorf("send daily ayah to %d: %w", chatID, err)
	}

	return nil
}

func recipientGone(err error) bool {
	var tgErr *tgbotapi.Error
	if !errors.As(err, &tgErr) {
		return false
	}

	switch tgErr.Code {
	case http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		return containsFold(tgErr.Message, "chat not found")
	default:
		return false
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
