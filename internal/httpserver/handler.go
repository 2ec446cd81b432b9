package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	webDelivery "conference-tracker/internal/conference/delivery/web"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerTemplates()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.SecurityHeaders())
	srv.gin.Use(srv.mw.RateLimit())
}

func (srv *HTTPServer) registerTemplates() {
	if srv.templatesGlob != "" {
		srv.gin.LoadHTMLGlob(srv.templatesGlob)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	webDelivery.RegisterRoutes(srv.gin, srv.webHandler)
	srv.l.Infof(ctx, "deadline page routes registered at GET /, /api/conferences, /calendar.ics")
}
