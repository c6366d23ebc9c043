// README: Itinerary HTTP handlers (generate, clear-cache, health).
package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/itinerary"
)

// ItineraryHandler exposes the itinerary service over HTTP.
type ItineraryHandler struct {
	svc         *itinerary.Service
	version     string
	environment string
}

func NewItineraryHandler(svc *itinerary.Service, environment string) *ItineraryHandler {
	return &ItineraryHandler{
		svc:         svc,
		version:     itinerary.SchemaVersion,
		environment: environment,
	}
}

// generateReq accepts days as any JSON value so that both numbers and integer
// strings are tolerated at the boundary; everything else is rejected before
// the core sees it.
type generateReq struct {
	Destination string `json:"destination"`
	Days        any    `json:"days"`
	Preferences string `json:"preferences"`
	Language    string `json:"language"`
}

// Generate handles POST /generate-itinerary.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "no valid JSON data provided")
		return
	}

	if strings.TrimSpace(req.Destination) == "" || req.Days == nil {
		writeError(c, http.StatusBadRequest, "missing required fields: destination and days")
		return
	}

	days, err := parseDays(req.Days)
	if err != nil {
		writeError(c, http.StatusBadRequest, "days must be a valid integer")
		return
	}

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = "en"
	}

	entry, err := h.svc.Generate(c.Request.Context(), c.ClientIP(), itinerary.Request{
		Destination: req.Destination,
		Days:        days,
		Preferences: req.Preferences,
		Language:    language,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, entry)
}

// ClearCache handles POST /clear-cache.
func (h *ItineraryHandler) ClearCache(c *gin.Context) {
	removed, err := h.svc.ClearCache(c.ClientIP())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, gin.H{
		"message":         "cache cleared successfully",
		"entries_removed": removed,
	})
}

// Health handles GET /health. It is a static liveness check: no cache or
// limiter interaction, never rate-limited.
func (h *ItineraryHandler) Health(c *gin.Context) {
	writeSuccess(c, gin.H{
		"status":      "healthy",
		"version":     h.version,
		"environment": h.environment,
	})
}

// parseDays coerces the days field to an int. JSON numbers must be whole;
// strings must parse as integers.
func parseDays(v any) (int, error) {
	switch d := v.(type) {
	case float64:
		if d != math.Trunc(d) {
			return 0, errors.New("days is not an integer")
		}
		return int(d), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return 0, errors.New("days is not an integer")
		}
		return n, nil
	default:
		return 0, errors.New("days is not an integer")
	}
}
