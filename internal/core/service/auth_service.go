package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/core/domain"
	"github.com/taskhub/todo-api/internal/core/ports"
)

// AuthService implements registration, login and the password flows.
type AuthService struct {
	repo       ports.UserRepository
	codec      *auth.Codec
	tokenTTL   time.Duration
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *auth.Codec, tokenTTL time.Duration, bcryptCost int, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}
	return &AuthService{
		repo:       repo,
		codec:      codec,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates an account with active=true. Mismatched confirmation and
// a taken username or email all collapse to ErrInvalidRegistration so the
// response never reveals which check failed.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidRegistration
	}
	if input.Password != input.PasswordConfirm {
		return nil, domain.ErrInvalidRegistration
	}

	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrInvalidRegistration
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// A concurrent registration can slip past the exists check; the
		// unique constraint catches it and the outcome stays generic.
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrInvalidRegistration
		}
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a token valid for the configured
// window. An unknown username and a wrong password produce the identical
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.Username, user.ID, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("login")
	return token, user, nil
}

// CurrentUser loads the account behind a resolved identity.
func (s *AuthService) CurrentUser(ctx context.Context, identity auth.Identity) (*domain.User, error) {
	return s.repo.FindByID(ctx, identity.UserID)
}

// ChangePassword replaces the stored hash after re-verifying the current
// password. A valid token alone is not enough: a stale or forged identity
// without the current password gets the generic ErrInvalidCredentials.
func (s *AuthService) ChangePassword(ctx context.Context, identity auth.Identity, current, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if !auth.CheckPassword(current, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("password changed")
	return nil
}

// DeleteAccount removes the caller's account. Owned todos cascade.
func (s *AuthService) DeleteAccount(ctx context.Context, identity auth.Identity) error {
	if err := s.repo.Delete(ctx, identity.UserID); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", identity.UserID).Msg("account deleted")
	return nil
}
