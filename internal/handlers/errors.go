package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"TRECGEN/internal/middleware"
	"TRECGEN/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError translates service failures to the response taxonomy:
// validation failures carry field errors, credit failures carry the deficit,
// everything unexpected collapses to an opaque internal error.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationFailedError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":        "Validation failed",
			"field_errors": validationErr.Errors,
		})
		return
	}

	var creditsErr *services.InsufficientCreditsError
	if errors.As(err, &creditsErr) {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":     "Insufficient credits",
			"required":  creditsErr.Required,
			"available": creditsErr.Available,
		})
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	slog.Error("request failed",
		"error", err,
		"request_id", middleware.GetRequestID(c),
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}
