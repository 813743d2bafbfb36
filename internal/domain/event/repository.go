package event

import (
	"context"

	"github.com/google/uuid"
)

// EventCounts carries per-event aggregate counts for list views
type EventCounts struct {
	OrderCount    int64
	TeamCount     int64
	FoodItemCount int64
}

// Repository defines persistence operations for events
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Event, error)
	FindAll(ctx context.Context) ([]Event, error)
	CountsByEvent(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID]EventCounts, error)
	Save(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}
