// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
	"voyago/internal/modules/itinerary"
)

// NewRouter wires the gin engine: itinerary routes, health, and metrics.
func NewRouter(svc *itinerary.Service, log zerolog.Logger, environment string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(log), middleware.Recovery(log))

	h := handlers.NewItineraryHandler(svc, environment)
	r.POST("/generate-itinerary", h.Generate)
	r.POST("/clear-cache", h.ClearCache)
	r.GET("/health", h.Health)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
