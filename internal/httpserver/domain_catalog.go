package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogHTTP "catalog-service/internal/catalog/delivery/http"
	catalogRepo "catalog-service/internal/catalog/repository/postgre"
	catalogUC "catalog-service/internal/catalog/usecase"
)

// setupCatalogDomain initializes the catalog domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)
func (srv *HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := catalogRepo.New(srv.db, srv.l)

	// 2. UseCase
	cacheSize := 0
	if srv.cfg.Cache.Enabled {
		cacheSize = srv.cfg.Cache.Size
	}
	uc := catalogUC.New(repo, srv.l, cacheSize, srv.cfg.Cache.TTL)

	// 3. HTTP Handler
	h := catalogHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/catalog/items
	catalogHTTP.RegisterRoutes(api.Group("/catalog"), h, srv.mw)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
