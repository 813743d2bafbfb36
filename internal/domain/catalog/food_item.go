package catalog

import (
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// FoodItem represents a dish that can be allocated to events and ordered.
// AvailableQty is the authoritative stock counter: only the order engine
// (commit and cancel paths) and the admin stock adjustment may change it.
type FoodItem struct {
	shared.BaseEntity
	Name         string
	Description  string
	Price        decimal.Decimal
	ImageURL     string
	AvailableQty int
	IsActive     bool
	Restrictions []string
}

// NewFoodItem creates a new active food item
func NewFoodItem(name, description string, price decimal.Decimal, imageURL string, availableQty int, restrictions []string) (*FoodItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Food item name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Food item price cannot be negative")
	}
	if availableQty < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Available quantity cannot be negative")
	}
	if restrictions == nil {
		restrictions = []string{}
	}

	return &FoodItem{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Description:  description,
		Price:        price,
		ImageURL:     imageURL,
		AvailableQty: availableQty,
		IsActive:     true,
		Restrictions: restrictions,
	}, nil
}

// Update changes the item's descriptive fields. Stock is adjusted
// separately through SetStock so price edits cannot race the order engine.
func (f *FoodItem) Update(name, description string, price decimal.Decimal, imageURL string, restrictions []string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Food item name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Food item price cannot be negative")
	}

	f.Name = name
	f.Description = description
	f.Price = price
	f.ImageURL = imageURL
	if restrictions != nil {
		f.Restrictions = restrictions
	}
	f.Touch()
	return nil
}

// SetStock replaces the available quantity (admin stock adjustment)
func (f *FoodItem) SetStock(qty int) error {
	if qty < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Available quantity cannot be negative")
	}
	f.AvailableQty = qty
	f.Touch()
	return nil
}

// Deactivate hides the item from ordering without destroying history
func (f *FoodItem) Deactivate() {
	f.IsActive = false
	f.Touch()
}

// Activate makes the item orderable again
func (f *FoodItem) Activate() {
	f.IsActive = true
	f.Touch()
}
