package portal

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for quick links
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuickLink, error)
	FindAll(ctx context.Context) ([]QuickLink, error)
	FindActive(ctx context.Context) ([]QuickLink, error)
	Save(ctx context.Context, link *QuickLink) error
	Update(ctx context.Context, link *QuickLink) error
	Delete(ctx context.Context, id uuid.UUID) error
}
