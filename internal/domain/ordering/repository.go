package ordering

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for orders.
//
// OrderedQuantity sums the quantities of a team's non-cancelled order
// items for one food item within one event. The order engine calls it
// twice: once during validation and again inside the commit transaction,
// where the transaction's isolation makes the second read authoritative
// for the per-team cap.
//
// MarkCancelled flips the order to CANCELLED only while it is still in a
// cancellable state and reports whether the flip happened. The condition
// lives in the UPDATE itself so two racing cancellations can never both
// win and restore stock twice.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	FindByTeam(ctx context.Context, teamID uuid.UUID) ([]Order, error)
	FindByEvent(ctx context.Context, eventID uuid.UUID) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	MarkCancelled(ctx context.Context, id int64) (bool, error)
	OrderedQuantity(ctx context.Context, teamID, eventID, foodItemID uuid.UUID) (int, error)
}
