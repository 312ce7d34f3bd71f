package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the JWT endpoints under /jwt.
func (h Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/jwt")
	g.POST("/generate", h.Generate)
	g.GET("/validate", h.Validate)
}
