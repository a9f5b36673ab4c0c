package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/apperrors"
)

// respondError writes a classified error as its status and short message.
// Unclassified errors become an opaque 500 and are logged with their cause.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}
	c.JSON(status, gin.H{"error": apperrors.MessageOf(err)})
}

// intQuery parses an integer query parameter with a default
func intQuery(c *gin.Context, name string, defaultValue int) int {
	if value := c.Query(name); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// boolQuery parses a boolean query parameter with a default. A malformed
// value is a validation failure rather than a silent fallback.
func boolQuery(c *gin.Context, name string, defaultValue bool) (bool, error) {
	value := c.Query(name)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, apperrors.Validation(name+" must be a boolean", err)
	}
	return parsed, nil
}
