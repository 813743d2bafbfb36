package registration

import (
	"context"
	"fmt"
	"strings"

	"github.com/foodcourt/backend/internal/domain/event"
	"github.com/foodcourt/backend/internal/domain/registration"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt cost used for team passwords
const passwordHashCost = 12

// TeamService handles team management operations
type TeamService struct {
	teamRepo  registration.TeamRepository
	eventRepo event.Repository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo registration.TeamRepository, eventRepo event.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo, eventRepo: eventRepo}
}

// CreateTeams creates a batch of teams. The whole batch is rejected when
// any requested username is already taken or appears twice in the request,
// so admins never end up with a partially imported roster.
func (s *TeamService) CreateTeams(ctx context.Context, req CreateTeamsRequest) ([]TeamResponse, error) {
	usernames := make([]string, 0, len(req.Teams))
	seen := make(map[string]bool, len(req.Teams))
	for _, in := range req.Teams {
		if seen[in.Username] {
			return nil, shared.NewDomainError("DUPLICATE_USERNAME",
				fmt.Sprintf("Username %s appears more than once in the request", in.Username))
		}
		seen[in.Username] = true
		usernames = append(usernames, in.Username)
	}

	taken, err := s.teamRepo.ExistingUsernames(ctx, usernames)
	if err != nil {
		return nil, err
	}
	if len(taken) > 0 {
		return nil, shared.NewDomainError("DUPLICATE_USERNAME",
			fmt.Sprintf("Usernames already taken: %s", strings.Join(taken, ", ")))
	}

	for _, in := range req.Teams {
		if in.EventID != nil {
			if _, err := s.eventRepo.FindByID(ctx, *in.EventID); err != nil {
				return nil, err
			}
		}
	}

	teams := make([]registration.Team, 0, len(req.Teams))
	for _, in := range req.Teams {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordHashCost)
		if err != nil {
			return nil, err
		}
		team, err := registration.NewTeam(in.Name, in.Username, string(hash), in.EventID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}

	if err := s.teamRepo.SaveAll(ctx, teams); err != nil {
		return nil, err
	}
	return ToTeamResponses(teams), nil
}

// UpdateTeam updates a team's name and optionally resets its password
func (s *TeamService) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*TeamResponse, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Name = req.Name
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), passwordHashCost)
		if err != nil {
			return nil, err
		}
		team.PasswordHash = string(hash)
	}
	team.Touch()

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	resp := ToTeamResponse(team)
	return &resp, nil
}

// AssignToEvent moves a team into an event
func (s *TeamService) AssignToEvent(ctx context.Context, teamID uuid.UUID, req AssignEventRequest) (*TeamResponse, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.FindByID(ctx, req.EventID); err != nil {
		return nil, err
	}

	team.AssignToEvent(req.EventID)
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	resp := ToTeamResponse(team)
	return &resp, nil
}

// RemoveFromEvent disassociates a team from its event. The team record
// and its order history are kept.
func (s *TeamService) RemoveFromEvent(ctx context.Context, teamID uuid.UUID) (*TeamResponse, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	team.RemoveFromEvent()
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	resp := ToTeamResponse(team)
	return &resp, nil
}

// GetTeam returns one team
func (s *TeamService) GetTeam(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTeamResponse(team)
	return &resp, nil
}

// ListTeams returns all teams
func (s *TeamService) ListTeams(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.teamRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToTeamResponses(teams), nil
}

// ListEventTeams returns the teams assigned to an event
func (s *TeamService) ListEventTeams(ctx context.Context, eventID uuid.UUID) ([]TeamResponse, error) {
	teams, err := s.teamRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return ToTeamResponses(teams), nil
}

// Stats returns aggregate team counts
func (s *TeamService) Stats(ctx context.Context) (*TeamStatsResponse, error) {
	stats, err := s.teamRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &TeamStatsResponse{
		TotalTeams:      stats.TotalTeams,
		TeamsWithOrders: stats.TeamsWithOrders,
	}, nil
}
