package postgre

import (
	"fmt"
	"strings"

	repo "catalog-service/internal/catalog/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneItem.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.SKU != "" {
		conditions = append(conditions, fmt.Sprintf("sku = $%d", idx))
		args = append(args, opt.SKU)
		idx++
	}
	if len(conditions) == 0 {
		// No filter provided: match nothing rather than everything.
		conditions = append(conditions, "FALSE")
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for the ListItems count.
func (r *implRepository) buildCountQuery(opt repo.ListItemsOptions) (string, []any) {
	conditions := []string{"TRUE"}
	var args []any
	if opt.Status != "" {
		args = append(args, opt.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE/ORDER/LIMIT clauses + args for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	conditions := []string{"TRUE"}
	var args []any

	if opt.Status != "" {
		args = append(args, opt.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}

	args = append(args, opt.Limit)
	limitIdx := len(args)
	args = append(args, opt.Offset)
	offsetIdx := len(args)

	mods := fmt.Sprintf("WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		strings.Join(conditions, " AND "), orderBy, limitIdx, offsetIdx)
	return mods, args
}
