package httpserver

import (
	"security-toolbox/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "security-toolbox"
	serviceVersion = "1.0.0"
)

// ping handles liveness pings
// @Summary Ping the server
// @Description Responds with "pong" to confirm the server is up.
// @Tags Health
// @Produce json
// @Success 200 {string} string "pong"
// @Router /ping [get]
func (srv *HTTPServer) ping(c *gin.Context) {
	response.OK(c, "pong")
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
		"version": serviceVersion,
	})
}
