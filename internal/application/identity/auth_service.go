package identity

import (
	"context"
	"errors"
	"time"

	"github.com/foodcourt/backend/internal/domain/identity"
	"github.com/foodcourt/backend/internal/domain/registration"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/foodcourt/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login so callers
// cannot distinguish unknown accounts from wrong passwords.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid credentials")

// AuthService authenticates admins and teams and manages their tokens
type AuthService struct {
	adminRepo  identity.Repository
	teamRepo   registration.TeamRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	adminRepo identity.Repository,
	teamRepo registration.TeamRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		teamRepo:   teamRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// AdminLogin authenticates an admin by email or name
func (s *AuthService) AdminLogin(ctx context.Context, req AdminLoginRequest) (*LoginResponse, error) {
	admin, err := s.adminRepo.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("Failed admin login", zap.String("identifier", req.Identifier))
		return nil, ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		SubjectID: admin.ID,
		Name:      admin.Name,
		Role:      auth.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin logged in", zap.String("admin_id", admin.ID.String()))
	return &LoginResponse{
		Principal: PrincipalResponse{
			ID:   admin.ID,
			Name: admin.Name,
			Role: string(auth.RoleAdmin),
		},
		Tokens: toTokenResponse(pair),
	}, nil
}

// TeamLogin authenticates a team by username. The issued token carries
// the team's current event assignment.
func (s *AuthService) TeamLogin(ctx context.Context, req TeamLoginRequest) (*LoginResponse, error) {
	team, err := s.teamRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(team.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("Failed team login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		SubjectID: team.ID,
		Name:      team.Name,
		Role:      auth.RoleTeam,
		EventID:   team.EventID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Team logged in", zap.String("team_id", team.ID.String()))
	return &LoginResponse{
		Principal: PrincipalResponse{
			ID:      team.ID,
			Name:    team.Name,
			Role:    string(auth.RoleTeam),
			EventID: team.EventID,
		},
		Tokens: toTokenResponse(pair),
	}, nil
}

// Refresh exchanges a refresh token for a new pair. For team tokens the
// current event assignment is re-read, so a team reassigned since login
// gets a token for its new event.
func (s *AuthService) Refresh(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, shared.ErrUnauthorized
	}

	subjectID, err := claims.GetSubjectUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	name := claims.Name
	var eventID *uuid.UUID
	if claims.Role == auth.RoleTeam {
		team, err := s.teamRepo.FindByID(ctx, subjectID)
		if err != nil {
			return nil, shared.ErrUnauthorized
		}
		name = team.Name
		eventID = team.EventID
	} else {
		admin, err := s.adminRepo.FindByID(ctx, subjectID)
		if err != nil {
			return nil, shared.ErrUnauthorized
		}
		name = admin.Name
	}

	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, name, eventID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	resp := toTokenResponse(pair)
	return &resp, nil
}

// Logout revokes the presented tokens by blacklisting their IDs for
// their remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if claims, err := s.jwtService.ValidateAccessToken(accessToken); err == nil {
		s.blacklistClaims(ctx, claims)
	}
	if refreshToken != "" {
		if claims, err := s.jwtService.ValidateRefreshToken(refreshToken); err == nil {
			s.blacklistClaims(ctx, claims)
		}
	}
	return nil
}

func (s *AuthService) blacklistClaims(ctx context.Context, claims *auth.Claims) {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("Failed to blacklist token", zap.Error(err))
	}
}

func toTokenResponse(pair *auth.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		TokenType:             pair.TokenType,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
	}
}
