package models

import (
	"github.com/foodcourt/backend/internal/domain/portal"
)

// QuickLinkModel is the persistence model for the QuickLink domain entity.
type QuickLinkModel struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	URL         string `gorm:"type:varchar(2048);not null"`
	Active      bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (QuickLinkModel) TableName() string {
	return "quick_links"
}

// ToDomain converts the persistence model to a domain QuickLink entity.
func (m *QuickLinkModel) ToDomain() *portal.QuickLink {
	return &portal.QuickLink{
		BaseEntity:  m.BaseModel.ToDomain(),
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Active:      m.Active,
	}
}

// FromDomain populates the persistence model from a domain QuickLink entity.
func (m *QuickLinkModel) FromDomain(l *portal.QuickLink) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.Title = l.Title
	m.Description = l.Description
	m.URL = l.URL
	m.Active = l.Active
}

// QuickLinkModelFromDomain creates a new persistence model from a domain QuickLink entity.
func QuickLinkModelFromDomain(l *portal.QuickLink) *QuickLinkModel {
	m := &QuickLinkModel{}
	m.FromDomain(l)
	return m
}
