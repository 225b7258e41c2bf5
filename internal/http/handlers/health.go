package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/academics-backend/internal/http/response"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	log *logger.Logger
	db  Pinger
}

func NewHealthHandler(log *logger.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), db: db}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			h.log.Warn("Healthcheck ping failed", "error", err)
			response.RespondErrorStatus(c, http.StatusServiceUnavailable, "unavailable", err)
			return
		}
	}
	c.String(http.StatusOK, "ok")
}
