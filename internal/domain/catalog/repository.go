package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for food items.
//
// AdjustStock is the only stock mutation available to the order engine: it
// performs a conditional, atomic delta (qty may be negative) and reports
// whether the row was changed. A negative delta that would drive the stock
// below zero changes no rows, which the caller treats as insufficient stock.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FoodItem, error)
	FindAll(ctx context.Context) ([]FoodItem, error)
	FindActive(ctx context.Context) ([]FoodItem, error)
	Save(ctx context.Context, item *FoodItem) error
	Update(ctx context.Context, item *FoodItem) error
	UpdateStock(ctx context.Context, id uuid.UUID, availableQty int) error
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error)
	// HasOrderReferences reports whether any order item references this food
	// item. Referenced items must not be deleted, only deactivated.
	HasOrderReferences(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
