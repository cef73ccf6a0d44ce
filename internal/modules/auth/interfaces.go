package auth

import (
	"context"

	"gigbook/internal/domain"
)

// UserRepository is the subset of the user store the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, username, role string) (string, error)
}
