package handlers

import (
	"errors"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"jobly/internal/apperrors"
)

// renderError is the single place a domain error becomes a wire response.
// Unexpected errors log a stack trace and hide the detail from the caller.
func renderError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		var message any
		if len(appErr.Messages) == 1 {
			message = appErr.Messages[0]
		} else {
			message = appErr.Messages
		}
		c.JSON(appErr.Status, gin.H{"status": appErr.Status, "message": message})
		return
	}

	log.Printf("unexpected error: %v\n%s", err, debug.Stack())
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  http.StatusInternalServerError,
		"message": "Internal Server Error",
	})
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
