package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency whose reachability gates readiness.
type Pinger func(ctx context.Context) error

// Health serves /health and /ready.
type Health struct {
	started time.Time
	timeout time.Duration
	deps    map[string]Pinger
}

// NewHealth creates a Health reporting on deps. Each ping is bounded by timeout.
func NewHealth(timeout time.Duration, deps map[string]Pinger) *Health {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Health{started: time.Now(), timeout: timeout, deps: deps}
}

func (h *Health) Register(r *gin.Engine) {
	r.GET("/health", h.Live)
	r.GET("/ready", h.Ready)
}

// Live reports that the process is serving.
func (h *Health) Live(c *gin.Context) {
	c.String(http.StatusOK, "healthy")
}

// Ready returns 200 only when every dependency answers its ping.
func (h *Health) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	ready := true
	deps := make(map[string]bool, len(h.deps))
	for name, ping := range h.deps {
		ok := ping(ctx) == nil
		deps[name] = ok
		ready = ready && ok
	}
	uptime := time.Since(h.started).Round(time.Second).String()
	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
}
