package event

import (
	"time"

	"github.com/foodcourt/backend/internal/domain/shared"
)

// Event represents a time-boxed food-ordering event
type Event struct {
	shared.BaseEntity
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// NewEvent creates a new event with a validated ordering window
func NewEvent(name, description string, startDate, endDate time.Time) (*Event, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Event name cannot be empty")
	}
	if !endDate.After(startDate) {
		return nil, shared.NewDomainError("INVALID_DATE_RANGE", "Event end date must be after start date")
	}

	return &Event{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}

// Update changes the event's name, description and window
func (e *Event) Update(name, description string, startDate, endDate time.Time) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Event name cannot be empty")
	}
	if !endDate.After(startDate) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "Event end date must be after start date")
	}

	e.Name = name
	e.Description = description
	e.StartDate = startDate
	e.EndDate = endDate
	e.Touch()
	return nil
}

// IsActiveAt reports whether the ordering window contains the given instant
func (e *Event) IsActiveAt(t time.Time) bool {
	return !t.Before(e.StartDate) && !t.After(e.EndDate)
}
