package ordering

import (
	"time"

	"github.com/foodcourt/backend/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineRequest is one requested line of a new order
type OrderLineRequest struct {
	FoodItemID uuid.UUID `json:"food_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
}

// PlaceOrderRequest represents the request to place an order
type PlaceOrderRequest struct {
	EventID uuid.UUID          `json:"event_id" binding:"required"`
	Items   []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents an admin status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

// UpdatePaymentStatusRequest toggles the manual payment flag
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending paid"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	FoodItemID   uuid.UUID       `json:"food_item_id"`
	FoodName     string          `json:"food_name,omitempty"`
	FoodImageURL string          `json:"food_image_url,omitempty"`
	Quantity     int             `json:"quantity"`
	PriceAtOrder decimal.Decimal `json:"price_at_order"`
	Amount       decimal.Decimal `json:"amount"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            int64               `json:"id"`
	TeamID        uuid.UUID           `json:"team_id"`
	TeamName      string              `json:"team_name,omitempty"`
	EventID       uuid.UUID           `json:"event_id"`
	EventName     string              `json:"event_name,omitempty"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	OrderStatus   string              `json:"order_status"`
	PaymentStatus string              `json:"payment_status"`
	PlacedAt      time.Time           `json:"placed_at"`
	Items         []OrderItemResponse `json:"items"`
}

// ToOrderResponse converts a domain order to its API representation
func ToOrderResponse(order *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		it := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:           it.ID,
			FoodItemID:   it.FoodItemID,
			FoodName:     it.FoodName,
			FoodImageURL: it.FoodImageURL,
			Quantity:     it.Quantity,
			PriceAtOrder: it.PriceAtOrder,
			Amount:       it.Amount(),
		})
	}

	return OrderResponse{
		ID:            order.ID,
		TeamID:        order.TeamID,
		TeamName:      order.TeamName,
		EventID:       order.EventID,
		EventName:     order.EventName,
		TotalAmount:   order.TotalAmount,
		OrderStatus:   order.OrderStatus.String(),
		PaymentStatus: string(order.PaymentStatus),
		PlacedAt:      order.PlacedAt,
		Items:         items,
	}
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses
}
