package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for event inventories and
// their allocations.
type Repository interface {
	// FindByEvent returns the event's inventory with its items loaded, or
	// shared.ErrNotFound when the event has no inventory yet.
	FindByEvent(ctx context.Context, eventID uuid.UUID) (*Inventory, error)
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*InventoryItem, error)
	SaveInventory(ctx context.Context, inv *Inventory) error
	// SaveItem persists a new allocation. Implementations surface the
	// (inventory_id, food_item_id) uniqueness violation as
	// shared.ErrAlreadyExists.
	SaveItem(ctx context.Context, item *InventoryItem) error
	UpdateItem(ctx context.Context, item *InventoryItem) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}
