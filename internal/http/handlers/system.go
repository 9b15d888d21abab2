package handlers

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

// SystemHandler serves the service-level endpoints.
type SystemHandler struct {
	ServiceName string
	Version     string
	AirportCode string

	// PingDB is nil when no audit store is configured.
	PingDB func(ctx context.Context) error

	// CountLogs reports audit rows for one flight; nil without an audit store.
	CountLogs func(ctx context.Context, flightNumber string) (int, error)

	Now func() time.Time
}

func (h SystemHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

func (h SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": h.ServiceName,
		"version": h.Version,
		"airport": h.AirportCode,
		"status":  "operational",
	})
}

func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.ServiceName,
		"version": h.Version,
	})
}

// OrientationHealth reports liveness of the orientation API group.
func (h SystemHandler) OrientationHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   h.ServiceName,
		"timestamp": h.now().Format(time.RFC3339),
	})
}

func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.PingDB == nil {
		c.JSON(http.StatusOK, gin.H{"status": "disabled", "message": "audit store not configured"})
		return
	}
	if err := h.PingDB(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "audit store unreachable", gin.H{"reason": err.Error()})
		return
	}
	payload := gin.H{"status": "ok", "message": "audit store connection OK"}
	if flight := strings.ToUpper(strings.TrimSpace(c.Query("flight_number"))); flight != "" && h.CountLogs != nil {
		n, err := h.CountLogs(c.Request.Context(), flight)
		if err != nil {
			respondError(c, http.StatusServiceUnavailable, "db_unavailable", "cannot count orientation logs", gin.H{"reason": err.Error()})
			return
		}
		payload["flight_number"] = flight
		payload["orientation_logs"] = n
	}
	c.JSON(http.StatusOK, payload)
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
