package usecase

import (
	"context"

	"catalog-service/internal/catalog"
	repo "catalog-service/internal/catalog/repository"
)

// Detail returns a single Item by ID through the read-through cache.
// A missing row propagates as the repository's not-found error.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.DetailItemOutput, error) {
	if uc.cache != nil {
		if item, ok := uc.cache.Get(id); ok {
			return catalog.DetailItemOutput{Item: item}, nil
		}
	}

	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		return catalog.DetailItemOutput{}, err
	}

	if uc.cache != nil {
		uc.cache.Add(id, item)
	}
	return catalog.DetailItemOutput{Item: item}, nil
}

// Update modifies an Item. Price changes are rejected for discontinued
// items; the updated row replaces any cached entry.
func (uc *implUseCase) Update(ctx context.Context, input catalog.UpdateItemInput) (catalog.UpdateItemOutput, error) {
	if input.Status != "" && input.Status != catalog.StatusActive && input.Status != catalog.StatusDiscontinued {
		return catalog.UpdateItemOutput{}, catalog.ErrInvalidStatus
	}

	current, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		return catalog.UpdateItemOutput{}, err
	}

	if current.Status == catalog.StatusDiscontinued && input.PriceCents != current.PriceCents {
		return catalog.UpdateItemOutput{}, catalog.ErrPriceLocked
	}

	status := input.Status
	if status == "" {
		status = current.Status
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Quantity:    input.Quantity,
		Status:      status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return catalog.UpdateItemOutput{}, err
	}

	if uc.cache != nil {
		uc.cache.Add(item.ID, item)
	}
	return catalog.UpdateItemOutput{Item: item}, nil
}

// Delete removes an Item and drops it from the cache.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	if uc.cache != nil {
		uc.cache.Remove(id)
	}
	return nil
}
