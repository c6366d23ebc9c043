// README: Base handler utilities (response envelope, error mapping).
package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/ratelimit"
)

type successEnvelope struct {
	Status     string `json:"status"`
	Data       any    `json:"data"`
	StatusCode int    `json:"status_code"`
}

type errorEnvelope struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	RetryAfter *int   `json:"retry_after,omitempty"`
}

func writeSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, successEnvelope{
		Status:     "success",
		Data:       data,
		StatusCode: http.StatusOK,
	})
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorEnvelope{
		Status:     "error",
		Message:    msg,
		StatusCode: status,
	})
}

// writeServiceError maps service outcomes onto the boundary contract:
// 400 validation, 429 rate-limited (with retry_after), 500 generation failure.
func writeServiceError(c *gin.Context, err error) {
	var verr *itinerary.ValidationError
	if errors.As(err, &verr) {
		writeError(c, http.StatusBadRequest, verr.Reason)
		return
	}

	var rerr *ratelimit.RateLimitError
	if errors.As(err, &rerr) {
		seconds := int(math.Ceil(rerr.RetryAfter.Seconds()))
		c.Header("Retry-After", strconv.Itoa(seconds))
		c.JSON(http.StatusTooManyRequests, errorEnvelope{
			Status:     "error",
			Message:    "rate limit exceeded",
			StatusCode: http.StatusTooManyRequests,
			RetryAfter: &seconds,
		})
		return
	}

	var gerr *itinerary.GenerationError
	if errors.As(err, &gerr) {
		writeError(c, http.StatusInternalServerError, "failed to generate itinerary")
		return
	}

	writeError(c, http.StatusInternalServerError, "an unexpected error occurred")
}
