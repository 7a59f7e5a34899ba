package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/quran"
	"github.com/devdanalmag/MakTab-platform/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed handler and tells the user what went wrong.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, userMessage(err))
			return nil
		}
		return nil
	}
}

// userMessage maps an error to the text shown in the chat.
func userMessage(err error) string {
	switch {
	case errors.Is(err, quran.ErrOutOfRange) && !errors.Is(err, quran.ErrInvalidReference):
		return msgOutOfRange
	case errors.Is(err, quran.ErrInvalidReference):
		return msgInvalidReference
	case errors.Is(err, service.ErrUnknownEdition):
		return msgUnknownEdition
	case quran.IsNotFound(err):
		return msgNotFound
	case errors.Is(err, quran.ErrRemoteService), errors.Is(err, quran.ErrMalformedResponse):
		return msgRemoteUnavailable
	default:
		return msgInternalError
	}
}

// reply returns a handler that sends fixed text.
func (h *Handler) reply(text string) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newHTMLMessage(chatID, text))
	}
}
