package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the chat endpoint. Extra middleware (rate limit)
// is appended by the caller.
func MapRoutes(r gin.IRouter, h Handler, middleware ...gin.HandlerFunc) {
	handlers := append(middleware, h.Chat)
	r.POST("/chat", handlers...)
}
