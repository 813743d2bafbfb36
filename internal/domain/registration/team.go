package registration

import (
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Team represents a participating team. A team belongs to at most one
// event at a time; EventID is nil until an admin assigns one.
type Team struct {
	shared.BaseEntity
	Name         string
	Username     string
	PasswordHash string
	EventID      *uuid.UUID
}

// NewTeam creates a new team with the given credentials. The password
// must already be hashed by the caller.
func NewTeam(name, username, passwordHash string, eventID *uuid.UUID) (*Team, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Team name cannot be empty")
	}
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Team username cannot be empty")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Team password cannot be empty")
	}

	return &Team{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
		EventID:      eventID,
	}, nil
}

// AssignToEvent links the team to an event
func (t *Team) AssignToEvent(eventID uuid.UUID) {
	t.EventID = &eventID
	t.Touch()
}

// RemoveFromEvent disassociates the team from its current event.
// The team record and its order history survive.
func (t *Team) RemoveFromEvent() {
	t.EventID = nil
	t.Touch()
}

// IsEnrolledIn reports whether the team currently belongs to the given event
func (t *Team) IsEnrolledIn(eventID uuid.UUID) bool {
	return t.EventID != nil && *t.EventID == eventID
}

// TeamCredential stores an auxiliary credential note attached to a team
// (external account email/password handed out by admins).
type TeamCredential struct {
	shared.BaseEntity
	TeamID   uuid.UUID
	Email    *string
	Password *string
}

// NewTeamCredential creates a credential note for a team
func NewTeamCredential(teamID uuid.UUID, email, password *string) (*TeamCredential, error) {
	if teamID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TEAM", "Team ID cannot be empty")
	}

	return &TeamCredential{
		BaseEntity: shared.NewBaseEntity(),
		TeamID:     teamID,
		Email:      email,
		Password:   password,
	}, nil
}
