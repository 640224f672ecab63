package ports

import (
	"context"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// UserRepository defines persistence for accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether either value is already taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// Delete removes the account; owned todos cascade at the schema level.
	Delete(ctx context.Context, id int64) error
}
