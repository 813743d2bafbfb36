package registration

import (
	"context"

	"github.com/google/uuid"
)

// TeamStats carries aggregate team counts for the admin dashboard
type TeamStats struct {
	TotalTeams      int64
	TeamsWithOrders int64
}

// TeamRepository defines persistence operations for teams
type TeamRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Team, error)
	FindByUsername(ctx context.Context, username string) (*Team, error)
	FindAll(ctx context.Context) ([]Team, error)
	FindByEvent(ctx context.Context, eventID uuid.UUID) ([]Team, error)
	// ExistingUsernames returns the subset of the given usernames that are
	// already taken, used for duplicate checks on bulk insert.
	ExistingUsernames(ctx context.Context, usernames []string) ([]string, error)
	Save(ctx context.Context, team *Team) error
	SaveAll(ctx context.Context, teams []Team) error
	Update(ctx context.Context, team *Team) error
	Stats(ctx context.Context) (TeamStats, error)
}

// CredentialRepository defines persistence operations for team credential notes
type CredentialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TeamCredential, error)
	FindByTeam(ctx context.Context, teamID uuid.UUID) ([]TeamCredential, error)
	Save(ctx context.Context, credential *TeamCredential) error
	Update(ctx context.Context, credential *TeamCredential) error
	Delete(ctx context.Context, id uuid.UUID) error
}
