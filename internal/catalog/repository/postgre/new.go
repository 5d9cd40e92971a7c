package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-service/internal/catalog/repository"
	"catalog-service/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the catalog domain.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/postgre.%s", method)
}
