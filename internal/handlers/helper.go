package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// queryID returns the trimmed id query parameter, which may be empty.
func queryID(c *gin.Context) string {
	return strings.TrimSpace(c.Query("id"))
}

// requireQueryID responds 400 with the given message when the id query
// parameter is absent. Callers must return when ok is false.
func requireQueryID(c *gin.Context, missingMessage string) (string, bool) {
	id := queryID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   missingMessage,
		})
		return "", false
	}
	return id, true
}
