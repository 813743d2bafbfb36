package identity

import (
	"github.com/foodcourt/backend/internal/domain/shared"
)

// Admin is a back-office user who manages events, food and teams
type Admin struct {
	shared.BaseEntity
	Name         string
	Email        string
	PasswordHash string
}

// NewAdmin creates a new admin account. The password must already be hashed.
func NewAdmin(name, email, passwordHash string) (*Admin, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Admin name cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Admin email cannot be empty")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Admin password cannot be empty")
	}

	return &Admin{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}
