package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/foodcourt/backend/internal/domain/event"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/foodcourt/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEventRepository implements event.Repository using GORM
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// FindByID finds an event by its ID
func (r *GormEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	var model models.EventModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all events, most recent start first
func (r *GormEventRepository) FindAll(ctx context.Context) ([]event.Event, error) {
	var eventModels []models.EventModel
	if err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&eventModels).Error; err != nil {
		return nil, err
	}
	events := make([]event.Event, len(eventModels))
	for i := range eventModels {
		events[i] = *eventModels[i].ToDomain()
	}
	return events, nil
}

// CountsByEvent aggregates order, team and allocation counts for the
// given events in three grouped queries instead of one query per event
func (r *GormEventRepository) CountsByEvent(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID]event.EventCounts, error) {
	counts := make(map[uuid.UUID]event.EventCounts, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}
	for _, id := range eventIDs {
		counts[id] = event.EventCounts{}
	}

	type grouped struct {
		EventID uuid.UUID
		Total   int64
	}

	var orderCounts []grouped
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&orderCounts).Error; err != nil {
		return nil, err
	}
	for _, row := range orderCounts {
		c := counts[row.EventID]
		c.OrderCount = row.Total
		counts[row.EventID] = c
	}

	var teamCounts []grouped
	if err := r.db.WithContext(ctx).Model(&models.TeamModel{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&teamCounts).Error; err != nil {
		return nil, err
	}
	for _, row := range teamCounts {
		c := counts[row.EventID]
		c.TeamCount = row.Total
		counts[row.EventID] = c
	}

	var itemCounts []grouped
	if err := r.db.WithContext(ctx).
		Table("inventory_items").
		Select("inventories.event_id AS event_id, COUNT(*) AS total").
		Joins("JOIN inventories ON inventories.id = inventory_items.inventory_id").
		Where("inventories.event_id IN ?", eventIDs).
		Group("inventories.event_id").
		Scan(&itemCounts).Error; err != nil {
		return nil, err
	}
	for _, row := range itemCounts {
		c := counts[row.EventID]
		c.FoodItemCount = row.Total
		counts[row.EventID] = c
	}

	return counts, nil
}

// Save persists a new event
func (r *GormEventRepository) Save(ctx context.Context, ev *event.Event) error {
	model := models.EventModelFromDomain(ev)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing event
func (r *GormEventRepository) Update(ctx context.Context, ev *event.Event) error {
	result := r.db.WithContext(ctx).Model(&models.EventModel{}).
		Where("id = ?", ev.ID).
		Updates(map[string]interface{}{
			"name":        ev.Name,
			"description": ev.Description,
			"start_date":  ev.StartDate,
			"end_date":    ev.EndDate,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an event
func (r *GormEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EventModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormEventRepository implements event.Repository
var _ event.Repository = (*GormEventRepository)(nil)
