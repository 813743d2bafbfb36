package ordering

import (
	"fmt"
	"time"

	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a food order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusConfirmed || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	case OrderStatusCompleted, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// PaymentStatus represents the manually toggled payment state
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// IsValid checks if the payment status is valid
func (p PaymentStatus) IsValid() bool {
	return p == PaymentStatusPending || p == PaymentStatusPaid
}

// OrderItem is a line of an order. PriceAtOrder snapshots the food item's
// price at order time and is never recomputed, so order history stays
// stable across later price changes.
type OrderItem struct {
	ID           uuid.UUID
	OrderID      int64
	FoodItemID   uuid.UUID
	Quantity     int
	PriceAtOrder decimal.Decimal
	// Display fields joined from the food item at load time; not part of
	// the order's own state.
	FoodName     string
	FoodImageURL string
	CreatedAt    time.Time
}

// Amount returns quantity times the snapshotted price
func (it *OrderItem) Amount() decimal.Decimal {
	return it.PriceAtOrder.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Order is a team's food order within an event. IDs are sequential
// integers assigned by the store on insert.
type Order struct {
	ID            int64
	TeamID        uuid.UUID
	EventID       uuid.UUID
	TotalAmount   decimal.Decimal
	OrderStatus   OrderStatus
	PaymentStatus PaymentStatus
	PlacedAt      time.Time
	Items         []OrderItem
	// Display fields joined at load time
	TeamName  string
	EventName string
}

// OrderLine is one requested line of a new order
type OrderLine struct {
	FoodItemID   uuid.UUID
	Quantity     int
	PriceAtOrder decimal.Decimal
}

// NewOrder builds a pending, unpaid order from the requested lines and
// computes the total from the caller-supplied price snapshots.
func NewOrder(teamID, eventID uuid.UUID, lines []OrderLine) (*Order, error) {
	if teamID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TEAM", "Team ID cannot be empty")
	}
	if eventID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EVENT", "Event ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}

	total := decimal.Zero
	items := make([]OrderItem, 0, len(lines))
	now := time.Now()
	for _, line := range lines {
		if line.FoodItemID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_FOOD_ITEM", "Food item ID cannot be empty")
		}
		if line.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Order quantity must be at least 1")
		}
		if line.PriceAtOrder.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Price at order cannot be negative")
		}
		items = append(items, OrderItem{
			ID:           uuid.New(),
			FoodItemID:   line.FoodItemID,
			Quantity:     line.Quantity,
			PriceAtOrder: line.PriceAtOrder,
			CreatedAt:    now,
		})
		total = total.Add(line.PriceAtOrder.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return &Order{
		TeamID:        teamID,
		EventID:       eventID,
		TotalAmount:   total,
		OrderStatus:   OrderStatusPending,
		PaymentStatus: PaymentStatusPending,
		PlacedAt:      now,
		Items:         items,
	}, nil
}

// TransitionTo moves the order to a new status, enforcing the transition
// table. Terminal states reject all further transitions.
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.OrderStatus.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition order from %s to %s", o.OrderStatus, target))
	}
	o.OrderStatus = target
	return nil
}

// SetPaymentStatus toggles the manual payment flag
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown payment status %q", status))
	}
	o.PaymentStatus = status
	return nil
}

// CanCancel reports whether the order may still be cancelled
func (o *Order) CanCancel() bool {
	return !o.OrderStatus.IsTerminal()
}

// Cancel marks the order cancelled. Stock restoration is the caller's
// responsibility and must happen in the same transaction.
func (o *Order) Cancel() error {
	if !o.CanCancel() {
		return ErrCannotCancel
	}
	o.OrderStatus = OrderStatusCancelled
	return nil
}
