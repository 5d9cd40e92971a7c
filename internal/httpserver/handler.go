package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

// registerMiddlewares wires the global chain. Order matters: metrics
// outermost so it observes the final status, then panic recovery, then the
// terminal error handler that owns every error response, then rate
// limiting. Auth is applied per route group.
func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Metrics())
	srv.gin.Use(srv.mw.Recovery())
	srv.gin.Use(srv.mw.ErrorHandler())
	srv.gin.Use(srv.mw.RateLimit())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	if err := srv.setupCatalogDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
