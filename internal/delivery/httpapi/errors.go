package httpapi

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

// toHTTPError maps client errors to API status codes. Input errors are the
// caller's fault, remote failures are reported as a bad gateway.
func (h *handler) toHTTPError(op string, err error) error {
	switch {
	case quran.IsInputError(err):
		return huma.Error400BadRequest(err.Error())
	case quran.IsNotFound(err):
		return huma.Error404NotFound("not found")
	case errors.Is(err, quran.ErrRemoteService), errors.Is(err, quran.ErrMalformedResponse):
		h.logger.Warn("upstream failure", zap.String("op", op), zap.Error(err))
		return huma.Error502BadGateway("scripture service unavailable")
	default:
		h.logger.Error("request failed", zap.String("op", op), zap.Error(err))
		return huma.Error500InternalServerError("internal error")
	}
}
