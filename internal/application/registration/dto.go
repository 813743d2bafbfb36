package registration

import (
	"time"

	"github.com/foodcourt/backend/internal/domain/registration"
	"github.com/google/uuid"
)

// TeamInput is one team of a bulk creation request
type TeamInput struct {
	Name     string     `json:"name" binding:"required,max=255"`
	Username string     `json:"username" binding:"required,max=64"`
	Password string     `json:"password" binding:"required,min=4"`
	EventID  *uuid.UUID `json:"event_id"`
}

// CreateTeamsRequest creates one or more teams in a single call
type CreateTeamsRequest struct {
	Teams []TeamInput `json:"teams" binding:"required,min=1,dive"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Password *string `json:"password" binding:"omitempty,min=4"`
}

// AssignEventRequest assigns a team to an event
type AssignEventRequest struct {
	EventID uuid.UUID `json:"event_id" binding:"required"`
}

// TeamResponse represents a team in API responses. The password hash
// never leaves the service layer.
type TeamResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	EventID   *uuid.UUID `json:"event_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TeamStatsResponse carries aggregate team counts for the admin dashboard
type TeamStatsResponse struct {
	TotalTeams      int64 `json:"total_teams"`
	TeamsWithOrders int64 `json:"teams_with_orders"`
}

// CreateCredentialRequest attaches a credential note to a team
type CreateCredentialRequest struct {
	TeamID   uuid.UUID `json:"team_id" binding:"required"`
	Email    *string   `json:"email" binding:"omitempty,email"`
	Password *string   `json:"password"`
}

// UpdateCredentialRequest updates a credential note
type UpdateCredentialRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
}

// CredentialResponse represents a team credential note in API responses
type CredentialResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Email     *string   `json:"email,omitempty"`
	Password  *string   `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTeamResponse converts a domain team to its API representation
func ToTeamResponse(team *registration.Team) TeamResponse {
	return TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Username:  team.Username,
		EventID:   team.EventID,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}

// ToTeamResponses converts a slice of domain teams
func ToTeamResponses(teams []registration.Team) []TeamResponse {
	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, ToTeamResponse(&teams[i]))
	}
	return responses
}

// ToCredentialResponse converts a domain credential note
func ToCredentialResponse(c *registration.TeamCredential) CredentialResponse {
	return CredentialResponse{
		ID:        c.ID,
		TeamID:    c.TeamID,
		Email:     c.Email,
		Password:  c.Password,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
