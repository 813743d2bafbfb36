package catalog

import (
	"time"

	"github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateFoodItemRequest represents the request to create a food item
type CreateFoodItemRequest struct {
	Name         string          `json:"name" binding:"required,max=255"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	ImageURL     string          `json:"image_url" binding:"omitempty,url"`
	AvailableQty int             `json:"available_qty" binding:"min=0"`
	Restrictions []string        `json:"restrictions"`
}

// UpdateFoodItemRequest represents the request to update a food item's
// descriptive fields. Stock changes go through UpdateStockRequest.
type UpdateFoodItemRequest struct {
	Name         string          `json:"name" binding:"required,max=255"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	ImageURL     string          `json:"image_url" binding:"omitempty,url"`
	IsActive     *bool           `json:"is_active"`
	Restrictions []string        `json:"restrictions"`
}

// UpdateStockRequest replaces a food item's available quantity
type UpdateStockRequest struct {
	AvailableQty int `json:"available_qty" binding:"min=0"`
}

// FoodItemResponse represents a food item in API responses
type FoodItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url,omitempty"`
	AvailableQty int             `json:"available_qty"`
	IsActive     bool            `json:"is_active"`
	Restrictions []string        `json:"restrictions"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToFoodItemResponse converts a domain food item to its API representation
func ToFoodItemResponse(item *catalog.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		ImageURL:     item.ImageURL,
		AvailableQty: item.AvailableQty,
		IsActive:     item.IsActive,
		Restrictions: item.Restrictions,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// ToFoodItemResponses converts a slice of domain food items
func ToFoodItemResponses(items []catalog.FoodItem) []FoodItemResponse {
	responses := make([]FoodItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToFoodItemResponse(&items[i]))
	}
	return responses
}
