package api

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errorspkg "coolassistant.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error             string `json:"error"`
	Code              string `json:"code"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
}

// handleError maps application errors to HTTP responses
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		slog.Error("Unhandled error", "path", c.FullPath(), "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error",
			Code:  errorspkg.ErrorTypeUnknown.String(),
		})
		return
	}

	resp := ErrorResponse{Code: appErr.Type.String(), Error: appErr.Message}
	var status int

	switch appErr.Type {
	case errorspkg.ValidationError:
		status = http.StatusBadRequest
	case errorspkg.UnauthorizedError:
		status = http.StatusUnauthorized
	case errorspkg.NotFoundError:
		status = http.StatusNotFound
	case errorspkg.CooldownError:
		status = http.StatusTooManyRequests
		resp.RetryAfterSeconds = int(math.Ceil(appErr.RetryAfter.Seconds()))
		if resp.RetryAfterSeconds > 0 {
			c.Header("Retry-After", strconv.Itoa(resp.RetryAfterSeconds))
		}
	case errorspkg.ExternalAPIError:
		status = http.StatusServiceUnavailable
		resp.Error = "External service unavailable"
	default:
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
		status = http.StatusInternalServerError
		resp.Error = "Internal server error"
	}

	c.AbortWithStatusJSON(status, resp)
}
