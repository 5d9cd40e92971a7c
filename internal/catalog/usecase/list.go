package usecase

import (
	"context"

	"catalog-service/internal/catalog"
	repo "catalog-service/internal/catalog/repository"
)

// List returns a page of Items filtered by status.
func (uc *implUseCase) List(ctx context.Context, input catalog.ListItemsInput) (catalog.ListItemsOutput, error) {
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return catalog.ListItemsOutput{}, err
	}

	return catalog.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
