package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/startpage-backend/internal/http/response"
)

// Pinger is any backing store that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if len(h.checks) == 0 {
		c.String(http.StatusOK, "ok")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{}
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			response.RespondError(c, http.StatusServiceUnavailable, name+"_unavailable", err)
			return
		}
		status[name] = "ok"
	}
	response.RespondOK(c, gin.H{"status": "ok", "checks": status})
}
