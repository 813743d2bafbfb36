package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/foodcourt/backend/internal/domain/identity"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/foodcourt/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAdminRepository implements identity.Repository using GORM
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GormAdminRepository
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// FindByID finds an admin by its ID
func (r *GormAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIdentifier matches the admin by email or by name, mirroring the
// login form which accepts either
func (r *GormAdminRepository) FindByIdentifier(ctx context.Context, identifier string) (*identity.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).
		Where("email = ? OR name = ?", strings.ToLower(identifier), identifier).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists a new admin account
func (r *GormAdminRepository) Save(ctx context.Context, admin *identity.Admin) error {
	model := models.AdminModelFromDomain(admin)
	return r.db.WithContext(ctx).Create(model).Error
}

// Ensure GormAdminRepository implements identity.Repository
var _ identity.Repository = (*GormAdminRepository)(nil)
