package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// getStatus godoc
// @Summary Show the status of server.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router /status [get]
func getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// healthCheck godoc
// @Summary Check that the database is reachable
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "Database unavailable"
// @Router /health [get]
func healthCheck(health portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := health.Check(ctx); err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Health check failed", slog.String("error", err.Error()))
			c.String(http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		c.String(http.StatusOK, "OK")
	}
}
