package catalog

import "time"

// Item statuses.
const (
	StatusActive       = "active"
	StatusDiscontinued = "discontinued"
)

// --- Item Domain Model ---

// Item is the core domain entity managed by this module. PriceCents is an
// integer to avoid float rounding on money.
type Item struct {
	ID          string
	SKU         string
	Name        string
	Description string
	PriceCents  int64
	Quantity    int
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	SKU         string
	Name        string
	Description string
	PriceCents  int64
	Quantity    int
}

type ListItemsInput struct {
	Status string
	Limit  int
	Offset int
}

type UpdateItemInput struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	Quantity    int
	Status      string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items  []Item
	Total  int
	Limit  int
	Offset int
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}
