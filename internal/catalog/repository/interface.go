package repository

import (
	"context"

	"catalog-service/internal/catalog"
)

// Repository is the composed interface for the catalog domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
//
// Error contract: driver errors propagate wrapped (%w), so callers can
// still match pgconn.PgError codes and pgx.ErrNoRows. Methods that target
// a single row return pgx.ErrNoRows (wrapped) when the row does not exist.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (catalog.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (catalog.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]catalog.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (catalog.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
