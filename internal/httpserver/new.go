package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "smartcars-insurance/internal/chat/delivery/http"
	"smartcars-insurance/internal/middleware"
	toolsHTTP "smartcars-insurance/internal/tools/delivery/http"
	"smartcars-insurance/pkg/log"
)

// HTTPServer holds all dependencies for an HTTP server. The same server
// hosts either the chat orchestrator or the tool service, depending on
// which handler is configured.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	chatHandler    chatHTTP.Handler
	chatRatePerMin int
	toolsHandler   toolsHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	// Chat orchestrator (cmd/api)
	ChatHandler    chatHTTP.Handler
	ChatRatePerMin int

	// Tool service (cmd/tools)
	ToolsHandler toolsHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		middleware:     cfg.Middleware,
		chatHandler:    cfg.ChatHandler,
		chatRatePerMin: cfg.ChatRatePerMin,
		toolsHandler:   cfg.ToolsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil && srv.toolsHandler == nil {
		return errors.New("at least one domain handler is required")
	}
	return nil
}
