package handlers

import (
	"context"
	"net/http"
	"time"

	"insurance_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.Health)
}

// Health reports liveness and whether the database answers a ping.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	status, database := http.StatusOK, "up"

	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.CtxWithError(ctx, "Health check: database unreachable", err)
		status, database = http.StatusServiceUnavailable, "down"
	}

	c.JSON(status, gin.H{
		"status":   http.StatusText(status),
		"database": database,
		"time":     time.Now().UTC(),
	})
}
