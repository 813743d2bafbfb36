package event

import (
	"time"

	"github.com/foodcourt/backend/internal/domain/event"
	"github.com/google/uuid"
)

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventListItemResponse is an event plus its aggregate counts for list views
type EventListItemResponse struct {
	EventResponse
	OrderCount    int64 `json:"order_count"`
	TeamCount     int64 `json:"team_count"`
	FoodItemCount int64 `json:"food_item_count"`
}

// ToEventResponse converts a domain event to its API representation
func ToEventResponse(evt *event.Event) EventResponse {
	return EventResponse{
		ID:          evt.ID,
		Name:        evt.Name,
		Description: evt.Description,
		StartDate:   evt.StartDate,
		EndDate:     evt.EndDate,
		IsActive:    evt.IsActiveAt(time.Now()),
		CreatedAt:   evt.CreatedAt,
		UpdatedAt:   evt.UpdatedAt,
	}
}
