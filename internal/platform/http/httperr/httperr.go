// Package httperr writes application errors as HTTP responses.
// It is the only place where an apperr.Kind is turned into a status code.
package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"loomspace_backend/internal/platform/apperr"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// internalMessage is returned to clients for any error not classified by apperr.
const internalMessage = "internal server error"

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error response and aborts the handler chain.
// Internal errors are logged and their detail is hidden from the client.
func Respond(c *gin.Context, err error) {
	status := StatusOf(err)
	msg, ok := apperr.MessageOf(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"remote_addr", c.ClientIP(),
		)
		msg = internalMessage
	} else if !ok {
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// InvalidRequest answers a request whose body or parameters failed binding.
// The binding error text is returned as is so that clients can see which field failed.
func InvalidRequest(c *gin.Context, err error) {
	slog.Warn("request validation failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
