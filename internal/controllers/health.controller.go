package controllers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// StorePinger reports store reachability within the given context.
type StorePinger func(ctx context.Context) bool

type HealthController struct {
	pinger StorePinger
}

func NewHealthController(pinger StorePinger) *HealthController {
	return &HealthController{pinger: pinger}
}

// Health godoc
// @Summary Health check
// @Description Reports store connectivity and server metadata. Always responds 200; the client inspects mongoConnected.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (hc *HealthController) Health(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"mongoConnected": hc.pinger(c.Request.Context()),
		"serverTime":     time.Now().UTC().Format(time.RFC3339),
		"memoryUsage": gin.H{
			"allocMB":    m.Alloc / 1024 / 1024,
			"sysMB":      m.Sys / 1024 / 1024,
			"goroutines": runtime.NumGoroutine(),
		},
	})
}
