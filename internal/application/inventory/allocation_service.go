package inventory

import (
	"context"
	"errors"

	"github.com/foodcourt/backend/internal/application/catalog"
	catalogdomain "github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/foodcourt/backend/internal/domain/event"
	"github.com/foodcourt/backend/internal/domain/inventory"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrAlreadyAllocated is returned when a food item is allocated to the
// same event twice
var ErrAlreadyAllocated = shared.NewDomainError("ALREADY_ALLOCATED", "Food item is already allocated to this event")

// AllocationService manages which food items are exposed to which events.
// An event's inventory container is created lazily on its first allocation.
type AllocationService struct {
	inventoryRepo inventory.Repository
	eventRepo     event.Repository
	foodRepo      catalogdomain.Repository
}

// NewAllocationService creates a new AllocationService
func NewAllocationService(
	inventoryRepo inventory.Repository,
	eventRepo event.Repository,
	foodRepo catalogdomain.Repository,
) *AllocationService {
	return &AllocationService{
		inventoryRepo: inventoryRepo,
		eventRepo:     eventRepo,
		foodRepo:      foodRepo,
	}
}

// Allocate exposes a food item to an event. The first allocation of an
// event creates its inventory container.
func (s *AllocationService) Allocate(ctx context.Context, req AllocateRequest) (*AllocationResponse, error) {
	if _, err := s.eventRepo.FindByID(ctx, req.EventID); err != nil {
		return nil, err
	}
	if _, err := s.foodRepo.FindByID(ctx, req.FoodItemID); err != nil {
		return nil, err
	}

	inv, err := s.inventoryRepo.FindByEvent(ctx, req.EventID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		inv, err = inventory.NewInventory(req.EventID)
		if err != nil {
			return nil, err
		}
		if err := s.inventoryRepo.SaveInventory(ctx, inv); err != nil {
			return nil, err
		}
	}

	if inv.ItemFor(req.FoodItemID) != nil {
		return nil, ErrAlreadyAllocated
	}

	item, err := inventory.NewInventoryItem(inv.ID, req.FoodItemID, req.MaxOrderPerTeam)
	if err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		// The unique constraint backstops the lookup above under
		// concurrent allocations.
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrAlreadyAllocated
		}
		return nil, err
	}

	resp := ToAllocationResponse(item)
	return &resp, nil
}

// UpdateCap changes an allocation's per-team cap; a null cap removes it
func (s *AllocationService) UpdateCap(ctx context.Context, allocationID uuid.UUID, req UpdateCapRequest) (*AllocationResponse, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, allocationID)
	if err != nil {
		return nil, err
	}
	if err := item.SetCap(req.MaxOrderPerTeam); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	resp := ToAllocationResponse(item)
	return &resp, nil
}

// Deallocate removes a food item from an event. Existing orders keep
// their lines; the item just stops being orderable for the event.
func (s *AllocationService) Deallocate(ctx context.Context, allocationID uuid.UUID) error {
	if _, err := s.inventoryRepo.FindItemByID(ctx, allocationID); err != nil {
		return err
	}
	return s.inventoryRepo.DeleteItem(ctx, allocationID)
}

// ListEventFoodItems returns every food item allocated to an event,
// joined with its allocation cap. Returns an empty list when the event
// has no inventory yet.
func (s *AllocationService) ListEventFoodItems(ctx context.Context, eventID uuid.UUID) ([]EventFoodItemResponse, error) {
	inv, err := s.inventoryRepo.FindByEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return []EventFoodItemResponse{}, nil
		}
		return nil, err
	}

	responses := make([]EventFoodItemResponse, 0, len(inv.Items))
	for i := range inv.Items {
		alloc := &inv.Items[i]
		food, err := s.foodRepo.FindByID(ctx, alloc.FoodItemID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, EventFoodItemResponse{
			FoodItemResponse: catalog.ToFoodItemResponse(food),
			AllocationID:     alloc.ID,
			MaxOrderPerTeam:  alloc.MaxOrderPerTeam,
		})
	}
	return responses, nil
}

// ListAvailableFoodItems returns the subset of an event's allocated food
// that teams can actually order: active and in stock.
func (s *AllocationService) ListAvailableFoodItems(ctx context.Context, eventID uuid.UUID) ([]EventFoodItemResponse, error) {
	items, err := s.ListEventFoodItems(ctx, eventID)
	if err != nil {
		return nil, err
	}

	available := make([]EventFoodItemResponse, 0, len(items))
	for _, item := range items {
		if item.IsActive && item.AvailableQty > 0 {
			available = append(available, item)
		}
	}
	return available, nil
}
