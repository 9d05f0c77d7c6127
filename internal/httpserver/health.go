package httpserver

import (
	"personal-agent/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "personal-agent"
	serviceVersion = "1.0.0"
)

func healthPayload(status string) gin.H {
	return gin.H{
		"status":  status,
		"service": serviceName,
		"version": serviceVersion,
	}
}

// healthCheck reports overall service health.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthPayload("healthy"))
}

// readyCheck reports readiness to serve traffic.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, healthPayload("ready"))
}

// liveCheck reports process liveness.
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthPayload("alive"))
}
