package usecase

import (
	"context"

	"github.com/google/uuid"

	"catalog-service/internal/catalog"
	repo "catalog-service/internal/catalog/repository"
)

// Create inserts a new Item. SKU uniqueness is enforced by the database
// unique index; a duplicate surfaces as the driver's unique-violation error
// and propagates unchanged so the delivery layer renders it as a conflict.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:          uuid.NewString(),
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Quantity:    input.Quantity,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return catalog.CreateItemOutput{}, err
	}

	return catalog.CreateItemOutput{Item: item}, nil
}
