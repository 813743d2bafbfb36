package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/foodcourt/backend/internal/domain/inventory"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/foodcourt/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormInventoryRepository implements inventory.Repository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByEvent returns the event's inventory with its allocations loaded
func (r *GormInventoryRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) (*inventory.Inventory, error) {
	var model models.InventoryModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindItemByID finds a single allocation by its ID
func (r *GormInventoryRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*inventory.InventoryItem, error) {
	var model models.InventoryItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveInventory persists a new inventory container
func (r *GormInventoryRepository) SaveInventory(ctx context.Context, inv *inventory.Inventory) error {
	model := models.InventoryModelFromDomain(inv)
	return r.db.WithContext(ctx).Create(model).Error
}

// SaveItem persists a new allocation. A duplicate (inventory_id,
// food_item_id) pair surfaces as shared.ErrAlreadyExists.
func (r *GormInventoryRepository) SaveItem(ctx context.Context, item *inventory.InventoryItem) error {
	model := models.InventoryItemModelFromDomain(item)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// UpdateItem persists cap changes on an existing allocation
func (r *GormInventoryRepository) UpdateItem(ctx context.Context, item *inventory.InventoryItem) error {
	result := r.db.WithContext(ctx).Model(&models.InventoryItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"max_order_per_team": item.MaxOrderPerTeam,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteItem removes an allocation
func (r *GormInventoryRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InventoryItemModel{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether the error is a Postgres unique
// constraint violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Ensure GormInventoryRepository implements inventory.Repository
var _ inventory.Repository = (*GormInventoryRepository)(nil)
