package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"catalog-service/internal/catalog"
	repo "catalog-service/internal/catalog/repository"
)

const itemColumns = `id, sku, name, description, price_cents, quantity, status, created_at, updated_at`

func scanItem(row pgx.Row) (catalog.Item, error) {
	var item catalog.Item
	err := row.Scan(
		&item.ID, &item.SKU, &item.Name, &item.Description,
		&item.PriceCents, &item.Quantity, &item.Status,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

// CreateItem inserts a new Item row and returns the created entity.
// A duplicate SKU surfaces as the driver's unique-violation error; it is
// wrapped, not replaced, so the response layer can classify it.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (catalog.Item, error) {
	query := fmt.Sprintf(`
		INSERT INTO catalog_items (id, sku, name, description, price_cents, quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'active', NOW(), NOW())
		RETURNING %s`, itemColumns)

	item, err := scanItem(r.db.QueryRow(ctx, query,
		opt.ID, opt.SKU, opt.Name, opt.Description, opt.PriceCents, opt.Quantity,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return catalog.Item{}, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns wrapped pgx.ErrNoRows when no row matches.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (catalog.Item, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM catalog_items WHERE %s LIMIT 1`, itemColumns, mods)

	item, err := scanItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err != pgx.ErrNoRows {
			r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		}
		return catalog.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// ListItems returns a paginated list of Items and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]catalog.Item, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM catalog_items WHERE %s", countMods)
	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM catalog_items %s`, itemColumns, mods)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("scan item: %w", scanErr)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// UpdateItem updates an Item by ID and returns the updated entity.
// Returns wrapped pgx.ErrNoRows when the row does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (catalog.Item, error) {
	query := fmt.Sprintf(`
		UPDATE catalog_items
		SET name = $1, description = $2, price_cents = $3, quantity = $4, status = $5, updated_at = $6
		WHERE id = $7
		RETURNING %s`, itemColumns)

	item, err := scanItem(r.db.QueryRow(ctx, query,
		opt.Name, opt.Description, opt.PriceCents, opt.Quantity, opt.Status, time.Now(), opt.ID,
	))
	if err != nil {
		if err != pgx.ErrNoRows {
			r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		}
		return catalog.Item{}, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an Item by ID. Returns wrapped pgx.ErrNoRows when the
// row does not exist.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM catalog_items WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete item %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}
