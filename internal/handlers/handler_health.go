package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/quote_pricing_app/internal/dto"
	"github.com/SscSPs/quote_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const deepHealthTimeout = 2 * time.Second

type healthHandler struct {
	store portsrepo.HealthChecker
}

// RegisterHealthRoutes registers the liveness and store-reachability checks.
func RegisterHealthRoutes(r gin.IRoutes, store portsrepo.HealthChecker) {
	h := &healthHandler{store: store}
	r.GET("/health", h.health)
	r.GET("/health/deep", h.deepHealth)
}

func (h *healthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

func (h *healthHandler) deepHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), deepHealthTimeout)
	defer cancel()

	dbOK := h.store != nil && h.store.Ping(ctx) == nil
	if !dbOK {
		middleware.GetLoggerFromCtx(ctx).Error("Deep health check failed", slog.Bool("db", false))
		c.JSON(http.StatusInternalServerError, dto.HealthResponse{Status: "degraded", DB: &dbOK, Timestamp: time.Now().UTC()})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", DB: &dbOK, Timestamp: time.Now().UTC()})
}
