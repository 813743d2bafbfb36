package inventory

import (
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Inventory is the per-event container of food allocations. Exactly zero
// or one exists per event; it is created lazily on the first allocation.
type Inventory struct {
	shared.BaseEntity
	EventID uuid.UUID
	Items   []InventoryItem
}

// NewInventory creates an empty inventory for an event
func NewInventory(eventID uuid.UUID) (*Inventory, error) {
	if eventID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EVENT", "Event ID cannot be empty")
	}
	return &Inventory{
		BaseEntity: shared.NewBaseEntity(),
		EventID:    eventID,
	}, nil
}

// ItemFor returns the allocation for the given food item, or nil when the
// food item is not allocated to this inventory.
func (inv *Inventory) ItemFor(foodItemID uuid.UUID) *InventoryItem {
	for i := range inv.Items {
		if inv.Items[i].FoodItemID == foodItemID {
			return &inv.Items[i]
		}
	}
	return nil
}

// InventoryItem exposes one food item to one event, optionally capping the
// cumulative quantity a single team may order. A nil MaxOrderPerTeam means
// unbounded.
type InventoryItem struct {
	shared.BaseEntity
	InventoryID     uuid.UUID
	FoodItemID      uuid.UUID
	MaxOrderPerTeam *int
}

// NewInventoryItem allocates a food item to an inventory
func NewInventoryItem(inventoryID, foodItemID uuid.UUID, maxOrderPerTeam *int) (*InventoryItem, error) {
	if inventoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVENTORY", "Inventory ID cannot be empty")
	}
	if foodItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FOOD_ITEM", "Food item ID cannot be empty")
	}
	if maxOrderPerTeam != nil && *maxOrderPerTeam < 0 {
		return nil, shared.NewDomainError("INVALID_CAP", "Per-team order cap cannot be negative")
	}

	return &InventoryItem{
		BaseEntity:      shared.NewBaseEntity(),
		InventoryID:     inventoryID,
		FoodItemID:      foodItemID,
		MaxOrderPerTeam: maxOrderPerTeam,
	}, nil
}

// SetCap replaces the per-team order cap; nil removes the cap
func (it *InventoryItem) SetCap(maxOrderPerTeam *int) error {
	if maxOrderPerTeam != nil && *maxOrderPerTeam < 0 {
		return shared.NewDomainError("INVALID_CAP", "Per-team order cap cannot be negative")
	}
	it.MaxOrderPerTeam = maxOrderPerTeam
	it.Touch()
	return nil
}
