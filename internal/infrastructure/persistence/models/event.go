package models

import (
	"time"

	"github.com/foodcourt/backend/internal/domain/event"
)

// EventModel is the persistence model for the Event domain entity.
type EventModel struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts the persistence model to a domain Event entity.
func (m *EventModel) ToDomain() *event.Event {
	return &event.Event{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
	}
}

// FromDomain populates the persistence model from a domain Event entity.
func (m *EventModel) FromDomain(e *event.Event) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Name = e.Name
	m.Description = e.Description
	m.StartDate = e.StartDate
	m.EndDate = e.EndDate
}

// EventModelFromDomain creates a new persistence model from a domain Event entity.
func EventModelFromDomain(e *event.Event) *EventModel {
	m := &EventModel{}
	m.FromDomain(e)
	return m
}
