package models

import (
	"github.com/foodcourt/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// InventoryModel is the persistence model for the per-event Inventory container.
type InventoryModel struct {
	BaseModel
	EventID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex"`
	Items   []InventoryItemModel `gorm:"foreignKey:InventoryID"`
}

// TableName returns the table name for GORM
func (InventoryModel) TableName() string {
	return "inventories"
}

// ToDomain converts the persistence model to a domain Inventory entity.
func (m *InventoryModel) ToDomain() *inventory.Inventory {
	items := make([]inventory.InventoryItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, *m.Items[i].ToDomain())
	}
	return &inventory.Inventory{
		BaseEntity: m.BaseModel.ToDomain(),
		EventID:    m.EventID,
		Items:      items,
	}
}

// FromDomain populates the persistence model from a domain Inventory entity.
// Items are persisted separately through the item repository methods.
func (m *InventoryModel) FromDomain(inv *inventory.Inventory) {
	m.FromDomainBaseEntity(inv.BaseEntity)
	m.EventID = inv.EventID
}

// InventoryModelFromDomain creates a new persistence model from a domain Inventory entity.
func InventoryModelFromDomain(inv *inventory.Inventory) *InventoryModel {
	m := &InventoryModel{}
	m.FromDomain(inv)
	return m
}

// InventoryItemModel is the persistence model for one food allocation.
// The (inventory_id, food_item_id) pair is unique so a food item can be
// allocated to an event at most once.
type InventoryItemModel struct {
	BaseModel
	InventoryID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_food,priority:1"`
	FoodItemID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_food,priority:2"`
	MaxOrderPerTeam *int      `gorm:"check:max_order_per_team >= 0"`
}

// TableName returns the table name for GORM
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// ToDomain converts the persistence model to a domain InventoryItem entity.
func (m *InventoryItemModel) ToDomain() *inventory.InventoryItem {
	return &inventory.InventoryItem{
		BaseEntity:      m.BaseModel.ToDomain(),
		InventoryID:     m.InventoryID,
		FoodItemID:      m.FoodItemID,
		MaxOrderPerTeam: m.MaxOrderPerTeam,
	}
}

// FromDomain populates the persistence model from a domain InventoryItem entity.
func (m *InventoryItemModel) FromDomain(it *inventory.InventoryItem) {
	m.FromDomainBaseEntity(it.BaseEntity)
	m.InventoryID = it.InventoryID
	m.FoodItemID = it.FoodItemID
	m.MaxOrderPerTeam = it.MaxOrderPerTeam
}

// InventoryItemModelFromDomain creates a new persistence model from a domain InventoryItem entity.
func InventoryItemModelFromDomain(it *inventory.InventoryItem) *InventoryItemModel {
	m := &InventoryItemModel{}
	m.FromDomain(it)
	return m
}
