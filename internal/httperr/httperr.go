package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error is an HTTP-visible failure carrying the status code to respond with.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, status int) *Error {
	return &Error{Status: status, Message: message}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Responder drains errors collected on the context and writes the single
// error envelope every endpoint shares. Errors that are not *httperr.Error
// (driver and constraint failures included) surface as 500s with the raw
// message, untranslated.
func Responder(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			apiErr = &Error{Status: http.StatusInternalServerError, Message: err.Error()}
			logger.Error("unhandled error",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}

		c.JSON(apiErr.Status, gin.H{"error": gin.H{
			"message": apiErr.Message,
			"status":  apiErr.Status,
		}})
	}
}

// NoRoute is the handler for unmatched paths.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{
			"message": "Not Found",
			"status":  http.StatusNotFound,
		}})
	}
}
