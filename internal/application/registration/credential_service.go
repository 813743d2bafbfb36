package registration

import (
	"context"

	"github.com/foodcourt/backend/internal/domain/registration"
	"github.com/google/uuid"
)

// CredentialService manages the credential notes admins attach to teams
type CredentialService struct {
	credentialRepo registration.CredentialRepository
	teamRepo       registration.TeamRepository
}

// NewCredentialService creates a new CredentialService
func NewCredentialService(credentialRepo registration.CredentialRepository, teamRepo registration.TeamRepository) *CredentialService {
	return &CredentialService{credentialRepo: credentialRepo, teamRepo: teamRepo}
}

// CreateCredential attaches a credential note to a team
func (s *CredentialService) CreateCredential(ctx context.Context, req CreateCredentialRequest) (*CredentialResponse, error) {
	if _, err := s.teamRepo.FindByID(ctx, req.TeamID); err != nil {
		return nil, err
	}

	credential, err := registration.NewTeamCredential(req.TeamID, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.credentialRepo.Save(ctx, credential); err != nil {
		return nil, err
	}

	resp := ToCredentialResponse(credential)
	return &resp, nil
}

// UpdateCredential updates a credential note
func (s *CredentialService) UpdateCredential(ctx context.Context, id uuid.UUID, req UpdateCredentialRequest) (*CredentialResponse, error) {
	credential, err := s.credentialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	credential.Email = req.Email
	credential.Password = req.Password
	credential.Touch()

	if err := s.credentialRepo.Update(ctx, credential); err != nil {
		return nil, err
	}

	resp := ToCredentialResponse(credential)
	return &resp, nil
}

// DeleteCredential removes a credential note
func (s *CredentialService) DeleteCredential(ctx context.Context, id uuid.UUID) error {
	if _, err := s.credentialRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.credentialRepo.Delete(ctx, id)
}

// ListTeamCredentials returns the credential notes of one team
func (s *CredentialService) ListTeamCredentials(ctx context.Context, teamID uuid.UUID) ([]CredentialResponse, error) {
	credentials, err := s.credentialRepo.FindByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	responses := make([]CredentialResponse, 0, len(credentials))
	for i := range credentials {
		responses = append(responses, ToCredentialResponse(&credentials[i]))
	}
	return responses, nil
}
