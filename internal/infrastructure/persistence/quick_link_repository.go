package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/foodcourt/backend/internal/domain/portal"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/foodcourt/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuickLinkRepository implements portal.Repository using GORM
type GormQuickLinkRepository struct {
	db *gorm.DB
}

// NewGormQuickLinkRepository creates a new GormQuickLinkRepository
func NewGormQuickLinkRepository(db *gorm.DB) *GormQuickLinkRepository {
	return &GormQuickLinkRepository{db: db}
}

// FindByID finds a quick link by its ID
func (r *GormQuickLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*portal.QuickLink, error) {
	var model models.QuickLinkModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all quick links, oldest first
func (r *GormQuickLinkRepository) FindAll(ctx context.Context) ([]portal.QuickLink, error) {
	var linkModels []models.QuickLinkModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&linkModels).Error; err != nil {
		return nil, err
	}
	return toQuickLinks(linkModels), nil
}

// FindActive returns only the quick links shown on the portal page
func (r *GormQuickLinkRepository) FindActive(ctx context.Context) ([]portal.QuickLink, error) {
	var linkModels []models.QuickLinkModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&linkModels).Error; err != nil {
		return nil, err
	}
	return toQuickLinks(linkModels), nil
}

// Save persists a new quick link
func (r *GormQuickLinkRepository) Save(ctx context.Context, link *portal.QuickLink) error {
	model := models.QuickLinkModelFromDomain(link)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing quick link
func (r *GormQuickLinkRepository) Update(ctx context.Context, link *portal.QuickLink) error {
	result := r.db.WithContext(ctx).Model(&models.QuickLinkModel{}).
		Where("id = ?", link.ID).
		Updates(map[string]interface{}{
			"title":       link.Title,
			"description": link.Description,
			"url":         link.URL,
			"active":      link.Active,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a quick link
func (r *GormQuickLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.QuickLinkModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toQuickLinks(linkModels []models.QuickLinkModel) []portal.QuickLink {
	links := make([]portal.QuickLink, len(linkModels))
	for i := range linkModels {
		links[i] = *linkModels[i].ToDomain()
	}
	return links
}

// Ensure GormQuickLinkRepository implements portal.Repository
var _ portal.Repository = (*GormQuickLinkRepository)(nil)
