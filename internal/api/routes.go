package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"handbag-explorer/internal/common/metrics"
	"handbag-explorer/internal/common/observability"
)

// RegisterRoutes mounts every route on the app behind a metrics
// middleware. obs may be nil; the prometheus counters still record.
func RegisterRoutes(app *fiber.App, h *Handler, obs *observability.Observability) {
	app.Use(requestMetrics(obs))

	app.Get("/healthz", h.Health)

	apiGroup := app.Group("/api")
	apiGroup.Get("/search", h.Search)
	apiGroup.Post("/concierge", h.Concierge)
	apiGroup.Get("/similar", h.Similar)
	apiGroup.Get("/explore", h.Explore)
}

// requestMetrics records count and duration per route, into both the
// prometheus vars and the otel meter. The route pattern, not the raw
// path, keeps label cardinality bounded.
func requestMetrics(obs *observability.Observability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		elapsed := time.Since(start)

		metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		if obs != nil {
			obs.RecordRequestProcessed(c.UserContext(), route, strconv.Itoa(status))
			obs.RecordRequestDuration(c.UserContext(), route, elapsed)
		}
		return err
	}
}
