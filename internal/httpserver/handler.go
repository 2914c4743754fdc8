package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "smartcars-insurance/internal/chat/delivery/http"
	toolsHTTP "smartcars-insurance/internal/tools/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers whichever domain this server hosts.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.chatHandler != nil {
		chatHTTP.MapRoutes(srv.gin, srv.chatHandler, srv.middleware.RateLimit(srv.chatRatePerMin))
		srv.l.Infof(ctx, "Chat route registered at POST /chat")
	}

	if srv.toolsHandler != nil {
		toolsHTTP.MapRoutes(srv.gin, srv.toolsHandler)
		srv.l.Infof(ctx, "Tool routes registered under POST /tools")
	}
}
