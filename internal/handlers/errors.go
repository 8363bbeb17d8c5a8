package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/sales-intake/internal/services"
	"github.com/pkg/errors"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrApplicationNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrWrongStep), errors.Is(err, services.ErrSubmitInFlight):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnknownField), errors.Is(err, services.ErrUnknownOption):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidDraft):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrDigestDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
}
