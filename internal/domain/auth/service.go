package auth

import "context"

// AuthService defines authentication operations.
type AuthService interface {
	// Login verifies email/password credentials and issues a token pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle completes the Google OAuth code exchange and issues a
	// token pair for the linked account.
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, error)
}
