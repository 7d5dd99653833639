package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/price_tracker_app/internal/apperrors"
	"github.com/SscSPs/price_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes the error body for err. Internal errors never
// leak their message and use fallback instead.
func respondWithError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	msg := fallback
	if status != http.StatusInternalServerError {
		msg = apperrors.MessageOf(err, fallback)
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}
