package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/foodcourt/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFoodRepository implements catalog.Repository using GORM
type GormFoodRepository struct {
	db *gorm.DB
}

// NewGormFoodRepository creates a new GormFoodRepository
func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// FindByID finds a food item by its ID
func (r *GormFoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.FoodItem, error) {
	var model models.FoodItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all food items, scarcest first
func (r *GormFoodRepository) FindAll(ctx context.Context) ([]catalog.FoodItem, error) {
	var foodModels []models.FoodItemModel
	if err := r.db.WithContext(ctx).
		Order("available_qty ASC").
		Find(&foodModels).Error; err != nil {
		return nil, err
	}
	return toFoodItems(foodModels), nil
}

// FindActive returns only the food items currently offered, scarcest first
func (r *GormFoodRepository) FindActive(ctx context.Context) ([]catalog.FoodItem, error) {
	var foodModels []models.FoodItemModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("available_qty ASC").
		Find(&foodModels).Error; err != nil {
		return nil, err
	}
	return toFoodItems(foodModels), nil
}

// Save persists a new food item
func (r *GormFoodRepository) Save(ctx context.Context, item *catalog.FoodItem) error {
	model := models.FoodItemModelFromDomain(item)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing food item
func (r *GormFoodRepository) Update(ctx context.Context, item *catalog.FoodItem) error {
	model := models.FoodItemModelFromDomain(item)
	result := r.db.WithContext(ctx).Model(&models.FoodItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"description":   model.Description,
			"price":         model.Price,
			"image_url":     model.ImageURL,
			"available_qty": model.AvailableQty,
			"is_active":     model.IsActive,
			"restrictions":  model.Restrictions,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdateStock sets the absolute stock level of a food item
func (r *GormFoodRepository) UpdateStock(ctx context.Context, id uuid.UUID, availableQty int) error {
	result := r.db.WithContext(ctx).Model(&models.FoodItemModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"available_qty": availableQty,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AdjustStock applies a stock delta as a single conditional UPDATE. The
// WHERE clause guards against driving the stock below zero, so a failed
// decrement changes no rows and the caller sees changed=false without
// any race window between read and write.
func (r *GormFoodRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE food_items SET available_qty = available_qty + ?, updated_at = NOW() WHERE id = ? AND available_qty + ? >= 0`,
		delta, id, delta,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// HasOrderReferences reports whether any order line references the food item
func (r *GormFoodRepository) HasOrderReferences(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OrderItemModel{}).
		Where("food_item_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a food item
func (r *GormFoodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FoodItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toFoodItems(foodModels []models.FoodItemModel) []catalog.FoodItem {
	items := make([]catalog.FoodItem, len(foodModels))
	for i := range foodModels {
		items[i] = *foodModels[i].ToDomain()
	}
	return items
}

// Ensure GormFoodRepository implements catalog.Repository
var _ catalog.Repository = (*GormFoodRepository)(nil)
