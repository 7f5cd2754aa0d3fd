package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/quote_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/quote_pricing_app/internal/middleware"
	"github.com/SscSPs/quote_pricing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// gatherer may be nil, in which case /metrics is not exposed.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	gatherer prometheus.Gatherer,
) {
	r.GET("/", getHome)
	RegisterHealthRoutes(r, services.Health)

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	setupAPIV1Routes(r, cfg, services)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"traceId": middleware.GetTraceIDFromCtx(c.Request.Context()),
			"error":   gin.H{"code": "NOT_FOUND", "message": "Route not found"},
		})
	})
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	if cfg.AuthEnabled() {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}

	RegisterQuoteRoutes(v1, services.Quote)
}
