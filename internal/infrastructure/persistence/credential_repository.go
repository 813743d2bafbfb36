package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/foodcourt/backend/internal/domain/registration"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/foodcourt/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCredentialRepository implements registration.CredentialRepository using GORM
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewGormCredentialRepository creates a new GormCredentialRepository
func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// FindByID finds a credential note by its ID
func (r *GormCredentialRepository) FindByID(ctx context.Context, id uuid.UUID) (*registration.TeamCredential, error) {
	var model models.TeamCredentialModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTeam returns a team's credential notes, oldest first
func (r *GormCredentialRepository) FindByTeam(ctx context.Context, teamID uuid.UUID) ([]registration.TeamCredential, error) {
	var credentialModels []models.TeamCredentialModel
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&credentialModels).Error; err != nil {
		return nil, err
	}
	credentials := make([]registration.TeamCredential, len(credentialModels))
	for i := range credentialModels {
		credentials[i] = *credentialModels[i].ToDomain()
	}
	return credentials, nil
}

// Save persists a new credential note
func (r *GormCredentialRepository) Save(ctx context.Context, credential *registration.TeamCredential) error {
	model := models.TeamCredentialModelFromDomain(credential)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing credential note
func (r *GormCredentialRepository) Update(ctx context.Context, credential *registration.TeamCredential) error {
	result := r.db.WithContext(ctx).Model(&models.TeamCredentialModel{}).
		Where("id = ?", credential.ID).
		Updates(map[string]interface{}{
			"email":      credential.Email,
			"password":   credential.Password,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a credential note
func (r *GormCredentialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamCredentialModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCredentialRepository implements registration.CredentialRepository
var _ registration.CredentialRepository = (*GormCredentialRepository)(nil)
