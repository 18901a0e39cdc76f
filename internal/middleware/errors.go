package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError sends the flat error shape every endpoint uses.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// BadRequest sends a 400 error
func BadRequest(c *gin.Context, message string) {
	RespondError(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 error
func NotFound(c *gin.Context, message string) {
	RespondError(c, http.StatusNotFound, message)
}

// InternalError sends a generic 500 error; detail stays server-side.
func InternalError(c *gin.Context) {
	RespondError(c, http.StatusInternalServerError, "internal server error")
}

// ServiceUnavailable sends a 503 error carrying the failure message.
func ServiceUnavailable(c *gin.Context, message string) {
	RespondError(c, http.StatusServiceUnavailable, message)
}
