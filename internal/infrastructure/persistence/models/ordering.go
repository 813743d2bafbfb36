package models

import (
	"time"

	"github.com/foodcourt/backend/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order domain entity.
// Orders use a sequential bigserial ID so kitchen staff can call out
// short numbers; every other table uses UUIDs.
type OrderModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	TeamID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	EventID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	OrderStatus   string          `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:'pending'"`
	PlacedAt      time.Time       `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
	Team  *TeamModel       `gorm:"foreignKey:TeamID"`
	Event *EventModel      `gorm:"foreignKey:EventID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
// Joined team, event and food names are copied into the display fields
// when the associations were preloaded.
func (m *OrderModel) ToDomain() *ordering.Order {
	items := make([]ordering.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, *m.Items[i].ToDomain())
	}

	order := &ordering.Order{
		ID:            m.ID,
		TeamID:        m.TeamID,
		EventID:       m.EventID,
		TotalAmount:   m.TotalAmount,
		OrderStatus:   ordering.OrderStatus(m.OrderStatus),
		PaymentStatus: ordering.PaymentStatus(m.PaymentStatus),
		PlacedAt:      m.PlacedAt,
		Items:         items,
	}
	if m.Team != nil {
		order.TeamName = m.Team.Name
	}
	if m.Event != nil {
		order.EventName = m.Event.Name
	}
	return order
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *ordering.Order) {
	m.ID = o.ID
	m.TeamID = o.TeamID
	m.EventID = o.EventID
	m.TotalAmount = o.TotalAmount
	m.OrderStatus = string(o.OrderStatus)
	m.PaymentStatus = string(o.PaymentStatus)
	m.PlacedAt = o.PlacedAt
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *ordering.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for one order line. The food
// item reference is protected against deletion so order history stays
// intact.
type OrderItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID      int64           `gorm:"not null;index"`
	FoodItemID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     int             `gorm:"not null;check:quantity >= 1"`
	PriceAtOrder decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt    time.Time       `gorm:"not null"`

	FoodItem *FoodItemModel `gorm:"foreignKey:FoodItemID"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem entity.
func (m *OrderItemModel) ToDomain() *ordering.OrderItem {
	item := &ordering.OrderItem{
		ID:           m.ID,
		OrderID:      m.OrderID,
		FoodItemID:   m.FoodItemID,
		Quantity:     m.Quantity,
		PriceAtOrder: m.PriceAtOrder,
		CreatedAt:    m.CreatedAt,
	}
	if m.FoodItem != nil {
		item.FoodName = m.FoodItem.Name
		item.FoodImageURL = m.FoodItem.ImageURL
	}
	return item
}

// FromDomain populates the persistence model from a domain OrderItem entity.
func (m *OrderItemModel) FromDomain(it *ordering.OrderItem) {
	m.ID = it.ID
	m.OrderID = it.OrderID
	m.FoodItemID = it.FoodItemID
	m.Quantity = it.Quantity
	m.PriceAtOrder = it.PriceAtOrder
	m.CreatedAt = it.CreatedAt
}
