package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the Base64 endpoints on r.
func (h Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/encode_base64", h.Encode)
	r.GET("/decode_base64", h.Decode)
}
