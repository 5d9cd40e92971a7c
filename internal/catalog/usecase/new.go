package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"catalog-service/internal/catalog"
	"catalog-service/internal/catalog/repository"
	"catalog-service/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	cache *expirable.LRU[string, catalog.Item] // nil when caching is disabled
}

// New creates a new catalog UseCase implementation. cacheSize <= 0 disables
// the detail read-through cache.
func New(repo repository.Repository, l log.Logger, cacheSize int, cacheTTL time.Duration) *implUseCase {
	uc := &implUseCase{
		repo: repo,
		l:    l,
	}
	if cacheSize > 0 {
		uc.cache = expirable.NewLRU[string, catalog.Item](cacheSize, nil, cacheTTL)
	}
	return uc
}
