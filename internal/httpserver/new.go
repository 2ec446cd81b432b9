package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	webDelivery "conference-tracker/internal/conference/delivery/web"
	"conference-tracker/internal/middleware"
	pkgLog "conference-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	templatesGlob string
	mw            *middleware.Middleware
	webHandler    webDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// TemplatesGlob locates the HTML templates, e.g. "templates/*.html".
	TemplatesGlob string

	Middleware *middleware.Middleware
	WebHandler webDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		templatesGlob: cfg.TemplatesGlob,
		mw:            cfg.Middleware,
		webHandler:    cfg.WebHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.mw == nil {
		return errors.New("middleware is required")
	}
	if srv.webHandler == nil {
		return errors.New("web handler is required")
	}
	return nil
}
