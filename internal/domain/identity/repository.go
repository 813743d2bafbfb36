package identity

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for admin accounts
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	// FindByIdentifier matches the admin by email or by name, mirroring
	// the login form which accepts either.
	FindByIdentifier(ctx context.Context, identifier string) (*Admin, error)
	Save(ctx context.Context, admin *Admin) error
}
