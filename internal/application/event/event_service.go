package event

import (
	"context"

	"github.com/foodcourt/backend/internal/domain/event"
	"github.com/google/uuid"
)

// EventService handles event management operations
type EventService struct {
	eventRepo event.Repository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo event.Repository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEvent creates a new event
func (s *EventService) CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	evt, err := event.NewEvent(req.Name, req.Description, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Save(ctx, evt); err != nil {
		return nil, err
	}

	resp := ToEventResponse(evt)
	return &resp, nil
}

// UpdateEvent updates an event's name, description and window
func (s *EventService) UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	evt, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := evt.Update(req.Name, req.Description, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, evt); err != nil {
		return nil, err
	}

	resp := ToEventResponse(evt)
	return &resp, nil
}

// DeleteEvent deletes an event. Events referenced by orders are protected
// by a database restriction and surface a conflict to the caller.
func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := s.eventRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

// GetEvent returns one event
func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	evt, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEventResponse(evt)
	return &resp, nil
}

// ListEvents returns all events together with their order, team and
// allocation counts.
func (s *EventService) ListEvents(ctx context.Context) ([]EventListItemResponse, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(events))
	for i := range events {
		ids = append(ids, events[i].ID)
	}
	counts, err := s.eventRepo.CountsByEvent(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]EventListItemResponse, 0, len(events))
	for i := range events {
		c := counts[events[i].ID]
		responses = append(responses, EventListItemResponse{
			EventResponse: ToEventResponse(&events[i]),
			OrderCount:    c.OrderCount,
			TeamCount:     c.TeamCount,
			FoodItemCount: c.FoodItemCount,
		})
	}
	return responses, nil
}
