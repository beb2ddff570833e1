package repository

import (
	"context"

	"employee-graphql-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	// GetByUsernameOrEmail looks a user up by exact username or by
	// lowercased email. Returns ErrNotFound when no row matches.
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
