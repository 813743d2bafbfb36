package identity

import (
	"time"

	"github.com/google/uuid"
)

// AdminLoginRequest authenticates an admin by email or name
type AdminLoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// TeamLoginRequest authenticates a team by username
type TeamLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	TokenType             string    `json:"token_type"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
}

// PrincipalResponse describes the authenticated admin or team
type PrincipalResponse struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	Role    string     `json:"role"`
	EventID *uuid.UUID `json:"event_id,omitempty"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Principal PrincipalResponse `json:"principal"`
	Tokens    TokenResponse     `json:"tokens"`
}
