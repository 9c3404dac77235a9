package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// Pagination reads the optional skip/limit query parameters.
// Missing, malformed, or negative values fall back to the defaults.
func Pagination(c *gin.Context) (skip, limit int) {
	skip = intQuery(c, "skip", defaultSkip)
	limit = intQuery(c, "limit", defaultLimit)

	if skip < 0 {
		skip = defaultSkip
	}
	if limit < 0 {
		limit = defaultLimit
	}
	return skip, limit
}

// IDParam parses the :id path segment. On failure it writes the 422
// response itself and returns ok=false.
func IDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "invalid request path",
			"fields": []FieldError{{Field: "id", Message: "must be an integer"}},
		})
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
