package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusForError maps a service error to its HTTP status. ErrConversionInputNotFound
// is checked first because it wraps a not-found cause.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrConversionInputNotFound):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrIntegrityViolation),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrArithmetic):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes err as a plain-text body. Internal failures are logged
// at error level and only the request id is exposed.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(internalMsg, slog.String("error", err.Error()))
		_ = c.Error(err)
		if requestID := middleware.GetRequestIDFromCtx(c.Request.Context()); requestID != "" {
			internalMsg += " (request id " + requestID + ")"
		}
		c.String(status, internalMsg)
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.String(status, err.Error())
}

// respondWithBindError reports malformed input as a validation error.
func respondWithBindError(c *gin.Context, logger *slog.Logger, err error) {
	respondWithError(c, logger, apperrors.NewValidationError(err.Error()), "Failed to bind request")
}
