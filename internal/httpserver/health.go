package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"breeze/pkg/response"
)

const (
	ServiceName    = "breeze"
	ServiceVersion = "1.0.0"

	readyTimeout = 2 * time.Second
)

// ReadyCheck is one dependency checked by /ready.
type ReadyCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

func status(s string) gin.H {
	return gin.H{"status": s, "service": ServiceName, "version": ServiceVersion}
}

// healthCheck
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, status("healthy"))
}

// readyCheck pings every registered dependency and names the ones that failed.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	failed := map[string]string{}
	for _, chk := range srv.readyChecks {
		if err := chk.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck %s: %v", chk.Name, err)
			failed[chk.Name] = err.Error()
		}
	}
	if len(failed) > 0 {
		body := status("not ready")
		body["failed"] = failed
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	response.OK(c, status("ready"))
}

// liveCheck
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, status("alive"))
}
