package models

import (
	"github.com/foodcourt/backend/internal/domain/identity"
)

// AdminModel is the persistence model for the Admin domain entity.
type AdminModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return "admins"
}

// ToDomain converts the persistence model to a domain Admin entity.
func (m *AdminModel) ToDomain() *identity.Admin {
	return &identity.Admin{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}

// FromDomain populates the persistence model from a domain Admin entity.
func (m *AdminModel) FromDomain(a *identity.Admin) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Name = a.Name
	m.Email = a.Email
	m.PasswordHash = a.PasswordHash
}

// AdminModelFromDomain creates a new persistence model from a domain Admin entity.
func AdminModelFromDomain(a *identity.Admin) *AdminModel {
	m := &AdminModel{}
	m.FromDomain(a)
	return m
}
