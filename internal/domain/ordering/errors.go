package ordering

import (
	"fmt"

	"github.com/foodcourt/backend/internal/domain/shared"
)

// Order validation error codes. All of these are raised before any
// mutation, so a caller seeing one can rely on zero side effects.
const (
	CodeNotEnrolled       = "NOT_ENROLLED"
	CodeEventNotActive    = "EVENT_NOT_ACTIVE"
	CodeNoInventory       = "NO_INVENTORY"
	CodeItemNotAllocated  = "ITEM_NOT_ALLOCATED"
	CodeItemInactive      = "ITEM_INACTIVE"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeTeamCapExceeded   = "TEAM_CAP_EXCEEDED"
	CodeCannotCancel      = "CANNOT_CANCEL"
)

var (
	// ErrNotEnrolled is returned when the team's current event does not
	// match the order's event (covers stale team sessions after reassignment).
	ErrNotEnrolled = shared.NewDomainError(CodeNotEnrolled, "Team is not enrolled in this event")

	// ErrEventNotActive is returned outside the event's ordering window.
	ErrEventNotActive = shared.NewDomainError(CodeEventNotActive, "Event is not currently active for ordering")

	// ErrNoInventory is returned when the event has no food allocated at all.
	ErrNoInventory = shared.NewDomainError(CodeNoInventory, "No inventory found for this event")

	// ErrCannotCancel is returned when cancelling a completed or already
	// cancelled order.
	ErrCannotCancel = shared.NewDomainError(CodeCannotCancel, "Cannot cancel this order")
)

// NewItemNotAllocatedError reports a line referencing food not allocated to the event
func NewItemNotAllocatedError(foodName string) *shared.DomainError {
	return shared.NewDomainError(CodeItemNotAllocated,
		fmt.Sprintf("Food item %s is not available for this event", foodName))
}

// NewItemInactiveError reports a line referencing a deactivated food item
func NewItemInactiveError(foodName string) *shared.DomainError {
	return shared.NewDomainError(CodeItemInactive,
		fmt.Sprintf("Food item %s is no longer available", foodName))
}

// NewInsufficientStockError reports available vs requested quantities
func NewInsufficientStockError(foodName string, available, requested int) *shared.DomainError {
	return shared.NewDomainError(CodeInsufficientStock,
		fmt.Sprintf("Not enough quantity available for %s. Available: %d, Requested: %d",
			foodName, available, requested))
}

// NewTeamCapExceededError reports the cap, the team's running total and the request
func NewTeamCapExceededError(foodName string, cap, alreadyOrdered, requested int) *shared.DomainError {
	return shared.NewDomainError(CodeTeamCapExceeded,
		fmt.Sprintf("Team order limit exceeded for %s. Limit: %d, Already ordered: %d, Requested: %d",
			foodName, cap, alreadyOrdered, requested))
}
