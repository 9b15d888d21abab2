package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"orientation/internal/domain"
	"orientation/internal/http/middleware"
	"orientation/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body of every endpoint.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Anything that is not a
// validation or not-found error is logged and reported as an opaque 500.
func RespondDomainError(c *gin.Context, err error) {
	var verr domain.ValidationError
	var ierr domain.InternalError
	switch {
	case errors.As(err, &verr):
		var details any
		if verr.Field != "" {
			details = gin.H{"field": verr.Field}
		}
		respondError(c, http.StatusBadRequest, "validation_error", verr.Error(), details)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, context.Canceled):
		utils.LogEvent(middleware.GetRequestID(c), "http", "canceled", c.Request.URL.Path)
		respondError(c, 499, "client_closed_request", "request canceled", nil)
	case errors.As(err, &ierr):
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", fmt.Sprintf("%s cause=%v", ierr.Error(), ierr.Err))
		respondError(c, http.StatusInternalServerError, "internal_error", "error while computing orientation", nil)
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "unexpected_error", err.Error())
		respondError(c, http.StatusInternalServerError, "internal_error", "error while computing orientation", nil)
	}
}

// Recovery turns a panic into the opaque 500 body.
func Recovery(c *gin.Context, recovered any) {
	utils.LogEvent(middleware.GetRequestID(c), "http", "panic", fmt.Sprint(recovered))
	respondError(c, http.StatusInternalServerError, "internal_error", "error while computing orientation", nil)
}
