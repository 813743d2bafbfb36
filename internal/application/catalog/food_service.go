package catalog

import (
	"context"

	"github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// FoodService handles food item management operations
type FoodService struct {
	foodRepo catalog.Repository
}

// NewFoodService creates a new FoodService
func NewFoodService(foodRepo catalog.Repository) *FoodService {
	return &FoodService{foodRepo: foodRepo}
}

// CreateFoodItem creates a new food item
func (s *FoodService) CreateFoodItem(ctx context.Context, req CreateFoodItemRequest) (*FoodItemResponse, error) {
	item, err := catalog.NewFoodItem(req.Name, req.Description, req.Price, req.ImageURL, req.AvailableQty, req.Restrictions)
	if err != nil {
		return nil, err
	}
	if err := s.foodRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	resp := ToFoodItemResponse(item)
	return &resp, nil
}

// UpdateFoodItem updates a food item's descriptive fields and active flag
func (s *FoodService) UpdateFoodItem(ctx context.Context, id uuid.UUID, req UpdateFoodItemRequest) (*FoodItemResponse, error) {
	item, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.Update(req.Name, req.Description, req.Price, req.ImageURL, req.Restrictions); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		if *req.IsActive {
			item.Activate()
		} else {
			item.Deactivate()
		}
	}
	if err := s.foodRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	resp := ToFoodItemResponse(item)
	return &resp, nil
}

// UpdateStock replaces a food item's available quantity
func (s *FoodService) UpdateStock(ctx context.Context, id uuid.UUID, req UpdateStockRequest) (*FoodItemResponse, error) {
	item, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.SetStock(req.AvailableQty); err != nil {
		return nil, err
	}
	if err := s.foodRepo.UpdateStock(ctx, id, req.AvailableQty); err != nil {
		return nil, err
	}

	resp := ToFoodItemResponse(item)
	return &resp, nil
}

// DeleteFoodItem deletes a food item. Items referenced by order history
// are deactivated instead, so past orders keep their lines.
func (s *FoodService) DeleteFoodItem(ctx context.Context, id uuid.UUID) (deleted bool, err error) {
	item, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	referenced, err := s.foodRepo.HasOrderReferences(ctx, id)
	if err != nil {
		return false, err
	}
	if referenced {
		item.Deactivate()
		if err := s.foodRepo.Update(ctx, item); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.foodRepo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// GetFoodItem returns one food item
func (s *FoodService) GetFoodItem(ctx context.Context, id uuid.UUID) (*FoodItemResponse, error) {
	item, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToFoodItemResponse(item)
	return &resp, nil
}

// ListFoodItems returns all food items
func (s *FoodService) ListFoodItems(ctx context.Context) ([]FoodItemResponse, error) {
	items, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToFoodItemResponses(items), nil
}

// ListActiveFoodItems returns only active food items
func (s *FoodService) ListActiveFoodItems(ctx context.Context) ([]FoodItemResponse, error) {
	items, err := s.foodRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToFoodItemResponses(items), nil
}
