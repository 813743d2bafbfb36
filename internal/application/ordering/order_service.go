package ordering

import (
	"context"
	"errors"
	"time"

	"github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/foodcourt/backend/internal/domain/event"
	"github.com/foodcourt/backend/internal/domain/inventory"
	"github.com/foodcourt/backend/internal/domain/ordering"
	"github.com/foodcourt/backend/internal/domain/registration"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order placement, cancellation and status changes.
// Placement validates against a read snapshot first, then re-verifies the
// two contended invariants (stock, per-team cap) inside the commit
// transaction, so concurrent orders can never oversell or exceed a cap.
type OrderService struct {
	orderRepo     ordering.Repository
	teamRepo      registration.TeamRepository
	eventRepo     event.Repository
	inventoryRepo inventory.Repository
	foodRepo      catalog.Repository
	txScope       TransactionScope
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.Repository,
	teamRepo registration.TeamRepository,
	eventRepo event.Repository,
	inventoryRepo inventory.Repository,
	foodRepo catalog.Repository,
	txScope TransactionScope,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		teamRepo:      teamRepo,
		eventRepo:     eventRepo,
		inventoryRepo: inventoryRepo,
		foodRepo:      foodRepo,
		txScope:       txScope,
	}
}

// orderLine carries one validated line through placement, pairing the
// domain line with the display name and cap needed by the commit phase.
type orderLine struct {
	line     ordering.OrderLine
	foodName string
	cap      *int
}

// PlaceOrder validates and atomically commits a new order for a team.
//
// The validation chain runs in a fixed sequence so callers get the most
// specific error first: enrollment, event window, inventory existence,
// then per line allocation, active flag, stock and the cumulative
// per-team cap. No state is mutated until every check passes.
//
// The commit transaction then inserts the order and decrements stock per
// line with a conditional update; a line whose stock was consumed by a
// concurrent order changes no rows and rolls the whole order back. Capped
// lines get their team totals re-read inside the transaction for the same
// reason.
func (s *OrderService) PlaceOrder(ctx context.Context, teamID uuid.UUID, req PlaceOrderRequest) (*OrderResponse, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.IsEnrolledIn(req.EventID) {
		return nil, ordering.ErrNotEnrolled
	}

	evt, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !evt.IsActiveAt(time.Now()) {
		return nil, ordering.ErrEventNotActive
	}

	inv, err := s.inventoryRepo.FindByEvent(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ordering.ErrNoInventory
		}
		return nil, err
	}

	lines := make([]orderLine, 0, len(req.Items))
	for _, item := range req.Items {
		food, err := s.foodRepo.FindByID(ctx, item.FoodItemID)
		if err != nil {
			return nil, err
		}

		alloc := inv.ItemFor(food.ID)
		if alloc == nil {
			return nil, ordering.NewItemNotAllocatedError(food.Name)
		}
		if !food.IsActive {
			return nil, ordering.NewItemInactiveError(food.Name)
		}
		if food.AvailableQty < item.Quantity {
			return nil, ordering.NewInsufficientStockError(food.Name, food.AvailableQty, item.Quantity)
		}
		if alloc.MaxOrderPerTeam != nil {
			already, err := s.orderRepo.OrderedQuantity(ctx, teamID, req.EventID, food.ID)
			if err != nil {
				return nil, err
			}
			if already+item.Quantity > *alloc.MaxOrderPerTeam {
				return nil, ordering.NewTeamCapExceededError(food.Name, *alloc.MaxOrderPerTeam, already, item.Quantity)
			}
		}

		lines = append(lines, orderLine{
			line: ordering.OrderLine{
				FoodItemID:   food.ID,
				Quantity:     item.Quantity,
				PriceAtOrder: food.Price,
			},
			foodName: food.Name,
			cap:      alloc.MaxOrderPerTeam,
		})
	}

	domainLines := make([]ordering.OrderLine, len(lines))
	for i, l := range lines {
		domainLines[i] = l.line
	}
	order, err := ordering.NewOrder(teamID, req.EventID, domainLines)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}

		for _, l := range lines {
			changed, err := repos.FoodItems().AdjustStock(ctx, l.line.FoodItemID, -l.line.Quantity)
			if err != nil {
				return err
			}
			if !changed {
				available := 0
				if food, ferr := repos.FoodItems().FindByID(ctx, l.line.FoodItemID); ferr == nil {
					available = food.AvailableQty
				}
				return ordering.NewInsufficientStockError(l.foodName, available, l.line.Quantity)
			}

			if l.cap != nil {
				// Re-read the team's total inside the transaction; it now
				// includes this order's own items.
				total, err := repos.Orders().OrderedQuantity(ctx, teamID, req.EventID, l.line.FoodItemID)
				if err != nil {
					return err
				}
				if total > *l.cap {
					return ordering.NewTeamCapExceededError(l.foodName, *l.cap, total-l.line.Quantity, l.line.Quantity)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload for the joined display fields; fall back to the in-memory
	// order if the read fails, the commit already succeeded.
	if placed, err := s.orderRepo.FindByID(ctx, order.ID); err == nil {
		order = placed
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// CancelOrder cancels an order and restores the stock of every line in
// the same transaction. Completed and already cancelled orders are
// rejected before anything is touched. The status flip is a conditional
// update inside the transaction: when a concurrent request finalizes the
// order first, the flip changes no rows and stock stays untouched, so an
// order's quantities can only ever be restored once.
func (s *OrderService) CancelOrder(ctx context.Context, orderID int64) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		cancelled, err := repos.Orders().MarkCancelled(ctx, order.ID)
		if err != nil {
			return err
		}
		if !cancelled {
			return ordering.ErrCannotCancel
		}
		for i := range order.Items {
			it := &order.Items[i]
			if _, err := repos.FoodItems().AdjustStock(ctx, it.FoodItemID, it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// UpdateOrderStatus moves an order along the status table. A transition
// to CANCELLED goes through CancelOrder so stock is restored.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	target := ordering.OrderStatus(req.Status)
	if target == ordering.OrderStatusCancelled {
		return s.CancelOrder(ctx, orderID)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.TransitionTo(target); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// UpdatePaymentStatus toggles the manual payment flag on an order
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, orderID int64, req UpdatePaymentStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.SetPaymentStatus(ordering.PaymentStatus(req.PaymentStatus)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetOrder returns one order with its items
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// ListOrders returns all orders, newest first
func (s *OrderService) ListOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// ListTeamOrders returns a team's order history
func (s *OrderService) ListTeamOrders(ctx context.Context, teamID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// ListEventOrders returns every order placed within an event
func (s *OrderService) ListEventOrders(ctx context.Context, eventID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}
