package models

import (
	"github.com/foodcourt/backend/internal/domain/registration"
	"github.com/google/uuid"
)

// TeamModel is the persistence model for the Team domain entity.
type TeamModel struct {
	BaseModel
	Name         string     `gorm:"type:varchar(255);not null"`
	Username     string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	EventID      *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (TeamModel) TableName() string {
	return "teams"
}

// ToDomain converts the persistence model to a domain Team entity.
func (m *TeamModel) ToDomain() *registration.Team {
	return &registration.Team{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		EventID:      m.EventID,
	}
}

// FromDomain populates the persistence model from a domain Team entity.
func (m *TeamModel) FromDomain(t *registration.Team) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Username = t.Username
	m.PasswordHash = t.PasswordHash
	m.EventID = t.EventID
}

// TeamModelFromDomain creates a new persistence model from a domain Team entity.
func TeamModelFromDomain(t *registration.Team) *TeamModel {
	m := &TeamModel{}
	m.FromDomain(t)
	return m
}

// TeamCredentialModel is the persistence model for the TeamCredential entity.
type TeamCredentialModel struct {
	BaseModel
	TeamID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Email    *string   `gorm:"type:varchar(255)"`
	Password *string   `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (TeamCredentialModel) TableName() string {
	return "team_credentials"
}

// ToDomain converts the persistence model to a domain TeamCredential entity.
func (m *TeamCredentialModel) ToDomain() *registration.TeamCredential {
	return &registration.TeamCredential{
		BaseEntity: m.BaseModel.ToDomain(),
		TeamID:     m.TeamID,
		Email:      m.Email,
		Password:   m.Password,
	}
}

// FromDomain populates the persistence model from a domain TeamCredential entity.
func (m *TeamCredentialModel) FromDomain(c *registration.TeamCredential) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.TeamID = c.TeamID
	m.Email = c.Email
	m.Password = c.Password
}

// TeamCredentialModelFromDomain creates a new persistence model from a domain TeamCredential entity.
func TeamCredentialModelFromDomain(c *registration.TeamCredential) *TeamCredentialModel {
	m := &TeamCredentialModel{}
	m.FromDomain(c)
	return m
}
