package auth

import "context"

type AuthService interface {
	// Login authenticates with email and password.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle returns the Google consent redirect URL.
	LoginWithGoogle(userAgent string) string

	// OAuthCallbackGoogle exchanges the callback code for tokens.
	OAuthCallbackGoogle(ctx context.Context, code string) (TokenResponse, error)

	// Refresh issues a new access token from a refresh token.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
}
