package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/foodcourt/backend/internal/domain/ordering"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/foodcourt/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ordering.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.FoodItem").
		Preload("Team").
		Preload("Event")
}

// FindByID finds an order by its sequential ID, with lines and display
// associations loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.preloaded(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all orders, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]ordering.Order, error) {
	var orderModels []models.OrderModel
	if err := r.preloaded(ctx).
		Order("placed_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return toOrders(orderModels), nil
}

// FindByTeam returns a team's orders, newest first
func (r *GormOrderRepository) FindByTeam(ctx context.Context, teamID uuid.UUID) ([]ordering.Order, error) {
	var orderModels []models.OrderModel
	if err := r.preloaded(ctx).
		Where("team_id = ?", teamID).
		Order("placed_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return toOrders(orderModels), nil
}

// FindByEvent returns an event's orders, newest first
func (r *GormOrderRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]ordering.Order, error) {
	var orderModels []models.OrderModel
	if err := r.preloaded(ctx).
		Where("event_id = ?", eventID).
		Order("placed_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return toOrders(orderModels), nil
}

// Save persists a new order together with its lines and writes the
// database-assigned sequential ID back onto the domain entity
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	model := models.OrderModelFromDomain(order)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	order.ID = model.ID

	itemModels := make([]models.OrderItemModel, len(order.Items))
	for i := range order.Items {
		order.Items[i].OrderID = model.ID
		itemModels[i].FromDomain(&order.Items[i])
	}
	if len(itemModels) > 0 {
		if err := r.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
			return err
		}
	}
	return nil
}

// Update persists status and payment changes on an existing order
func (r *GormOrderRepository) Update(ctx context.Context, order *ordering.Order) error {
	result := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"order_status":   string(order.OrderStatus),
			"payment_status": string(order.PaymentStatus),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// MarkCancelled flips an order to CANCELLED only while it is still
// cancellable. The guard is part of the UPDATE, so of two racing
// cancellations only one changes a row; the caller restores stock only
// when true is returned.
func (r *GormOrderRepository) MarkCancelled(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ? AND order_status NOT IN ?", id, []string{
			string(ordering.OrderStatusCompleted),
			string(ordering.OrderStatusCancelled),
		}).
		Updates(map[string]interface{}{
			"order_status": string(ordering.OrderStatusCancelled),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// OrderedQuantity sums a team's non-cancelled order quantities for one
// food item within one event
func (r *GormOrderRepository) OrderedQuantity(ctx context.Context, teamID, eventID, foodItemID uuid.UUID) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(oi.quantity), 0)
		 FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 WHERE o.team_id = ? AND o.event_id = ? AND oi.food_item_id = ? AND o.order_status <> ?`,
		teamID, eventID, foodItemID, string(ordering.OrderStatusCancelled),
	).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func toOrders(orderModels []models.OrderModel) []ordering.Order {
	orders := make([]ordering.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = *orderModels[i].ToDomain()
	}
	return orders
}

// Ensure GormOrderRepository implements ordering.Repository
var _ ordering.Repository = (*GormOrderRepository)(nil)
