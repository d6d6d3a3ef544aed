package auth

import (
	"context"
)

// AuthService defines login and token refresh
type AuthService interface {
	// Login verifies credentials and issues a token pair
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a refresh token for a new token pair
	Refresh(ctx context.Context, req RefreshRequest) (TokenPair, error)
}
