package http

import (
	"time"

	"catalog-service/internal/catalog"
)

// --- Request DTOs ---

type createReq struct {
	SKU         string `json:"sku"         binding:"required,min=1,max=64"`
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	PriceCents  int64  `json:"price_cents" binding:"gte=0"`
	Quantity    int    `json:"quantity"    binding:"gte=0"`
}

func (r createReq) toInput() catalog.CreateItemInput {
	return catalog.CreateItemInput{
		SKU:         r.SKU,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Quantity:    r.Quantity,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=active discontinued"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() catalog.ListItemsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return catalog.ListItemsInput{
		Status: r.Status,
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	PriceCents  int64  `json:"price_cents" binding:"gte=0"`
	Quantity    int    `json:"quantity"    binding:"gte=0"`
	Status      string `json:"status"      binding:"omitempty,oneof=active discontinued"`
}

func (r updateReq) toInput() catalog.UpdateItemInput {
	return catalog.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Quantity:    r.Quantity,
		Status:      r.Status,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newItemResp(item catalog.Item) itemResp {
	return itemResp{
		ID:          item.ID,
		SKU:         item.SKU,
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		Quantity:    item.Quantity,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out catalog.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out catalog.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out catalog.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out catalog.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}
