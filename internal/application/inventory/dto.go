package inventory

import (
	"time"

	"github.com/foodcourt/backend/internal/application/catalog"
	"github.com/foodcourt/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// AllocateRequest exposes a food item to an event, optionally capping the
// cumulative quantity a single team may order
type AllocateRequest struct {
	EventID         uuid.UUID `json:"event_id" binding:"required"`
	FoodItemID      uuid.UUID `json:"food_item_id" binding:"required"`
	MaxOrderPerTeam *int      `json:"max_order_per_team" binding:"omitempty,min=0"`
}

// UpdateCapRequest changes the per-team cap of an allocation; a null cap
// removes the limit
type UpdateCapRequest struct {
	MaxOrderPerTeam *int `json:"max_order_per_team" binding:"omitempty,min=0"`
}

// AllocationResponse represents one allocation in API responses
type AllocationResponse struct {
	ID              uuid.UUID `json:"id"`
	InventoryID     uuid.UUID `json:"inventory_id"`
	FoodItemID      uuid.UUID `json:"food_item_id"`
	MaxOrderPerTeam *int      `json:"max_order_per_team,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EventFoodItemResponse is a food item joined with its allocation for an event
type EventFoodItemResponse struct {
	catalog.FoodItemResponse
	AllocationID    uuid.UUID `json:"allocation_id"`
	MaxOrderPerTeam *int      `json:"max_order_per_team,omitempty"`
}

// ToAllocationResponse converts a domain allocation to its API representation
func ToAllocationResponse(item *inventory.InventoryItem) AllocationResponse {
	return AllocationResponse{
		ID:              item.ID,
		InventoryID:     item.InventoryID,
		FoodItemID:      item.FoodItemID,
		MaxOrderPerTeam: item.MaxOrderPerTeam,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
