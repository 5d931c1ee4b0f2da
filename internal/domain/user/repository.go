package user

import "context"

// UserRepository defines data access methods for login accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByOAuthProviderID(ctx context.Context, provider string, providerID string) (User, error)
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
}
