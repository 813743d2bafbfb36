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

// GormTeamRepository implements registration.TeamRepository using GORM
type GormTeamRepository struct {
	db *gorm.DB
}

// NewGormTeamRepository creates a new GormTeamRepository
func NewGormTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

// FindByID finds a team by its ID
func (r *GormTeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*registration.Team, error) {
	var model models.TeamModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsername finds a team by its login username
func (r *GormTeamRepository) FindByUsername(ctx context.Context, username string) (*registration.Team, error) {
	var model models.TeamModel
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all teams ordered by name
func (r *GormTeamRepository) FindAll(ctx context.Context) ([]registration.Team, error) {
	var teamModels []models.TeamModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&teamModels).Error; err != nil {
		return nil, err
	}
	return toTeams(teamModels), nil
}

// FindByEvent returns the teams assigned to an event, ordered by name
func (r *GormTeamRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]registration.Team, error) {
	var teamModels []models.TeamModel
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name ASC").
		Find(&teamModels).Error; err != nil {
		return nil, err
	}
	return toTeams(teamModels), nil
}

// ExistingUsernames returns the subset of the given usernames that are
// already taken
func (r *GormTeamRepository) ExistingUsernames(ctx context.Context, usernames []string) ([]string, error) {
	if len(usernames) == 0 {
		return nil, nil
	}
	var taken []string
	if err := r.db.WithContext(ctx).Model(&models.TeamModel{}).
		Where("username IN ?", usernames).
		Pluck("username", &taken).Error; err != nil {
		return nil, err
	}
	return taken, nil
}

// Save persists a new team
func (r *GormTeamRepository) Save(ctx context.Context, team *registration.Team) error {
	model := models.TeamModelFromDomain(team)
	return r.db.WithContext(ctx).Create(model).Error
}

// SaveAll persists a batch of new teams in one insert
func (r *GormTeamRepository) SaveAll(ctx context.Context, teams []registration.Team) error {
	if len(teams) == 0 {
		return nil
	}
	teamModels := make([]models.TeamModel, len(teams))
	for i := range teams {
		teamModels[i].FromDomain(&teams[i])
	}
	return r.db.WithContext(ctx).Create(&teamModels).Error
}

// Update persists changes to an existing team
func (r *GormTeamRepository) Update(ctx context.Context, team *registration.Team) error {
	result := r.db.WithContext(ctx).Model(&models.TeamModel{}).
		Where("id = ?", team.ID).
		Updates(map[string]interface{}{
			"name":          team.Name,
			"password_hash": team.PasswordHash,
			"event_id":      team.EventID,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Stats returns aggregate team counts for the admin dashboard
func (r *GormTeamRepository) Stats(ctx context.Context) (registration.TeamStats, error) {
	var stats registration.TeamStats
	if err := r.db.WithContext(ctx).Model(&models.TeamModel{}).
		Count(&stats.TotalTeams).Error; err != nil {
		return registration.TeamStats{}, err
	}
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Distinct("team_id").
		Count(&stats.TeamsWithOrders).Error; err != nil {
		return registration.TeamStats{}, err
	}
	return stats, nil
}

func toTeams(teamModels []models.TeamModel) []registration.Team {
	teams := make([]registration.Team, len(teamModels))
	for i := range teamModels {
		teams[i] = *teamModels[i].ToDomain()
	}
	return teams
}

// Ensure GormTeamRepository implements registration.TeamRepository
var _ registration.TeamRepository = (*GormTeamRepository)(nil)
