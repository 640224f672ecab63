package ports

import (
	"context"

	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	PhoneNumber     string
	Password        string
	PasswordConfirm string
}

// AuthService implements the session and registration flows.
type AuthService interface {
	// Register creates an account. Any violation (mismatched confirmation,
	// taken username, taken email) returns domain.ErrInvalidRegistration.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and issues a token. Unknown username and
	// wrong password both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, identity auth.Identity) (*domain.User, error)
	// ChangePassword re-verifies current before accepting a new password,
	// even when the caller already holds a valid token.
	ChangePassword(ctx context.Context, identity auth.Identity, current, newPassword string) error
	DeleteAccount(ctx context.Context, identity auth.Identity) error
}
