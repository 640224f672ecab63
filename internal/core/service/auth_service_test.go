package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/core/domain"
	"github.com/taskhub/todo-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := cloneUser(user)
	clone.ID = r.nextID
	r.nextID++
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestAuthService(repo ports.UserRepository) (*AuthService, *auth.Codec) {
	codec := auth.NewCodec("test-secret")
	// bcrypt cost 4 keeps the tests fast.
	return NewAuthService(repo, codec, time.Hour, 4, zerolog.Nop()), codec
}

func registerAlice(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:        "alice",
		Email:           "a@x.com",
		FirstName:       "A",
		LastName:        "L",
		Password:        "pw1",
		PasswordConfirm: "pw1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	user := registerAlice(t, svc)
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if !user.Active {
		t.Fatalf("expected active account")
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("password stored in plaintext")
	}
	if !auth.CheckPassword("pw1", user.PasswordHash) {
		t.Fatalf("stored hash does not verify the password")
	}
}

func TestAuthService_Register_FailuresAreIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)
	registerAlice(t, svc)

	cases := map[string]ports.RegisterInput{
		"duplicate username": {Username: "alice", Email: "other@x.com", FirstName: "B",
			Password: "pw2", PasswordConfirm: "pw2"},
		"duplicate email": {Username: "bob", Email: "a@x.com", FirstName: "B",
			Password: "pw2", PasswordConfirm: "pw2"},
		"mismatched confirmation": {Username: "carol", Email: "c@x.com", FirstName: "C",
			Password: "pw2", PasswordConfirm: "pw3"},
		"empty password": {Username: "dave", Email: "d@x.com", FirstName: "D"},
	}
	for name, input := range cases {
		if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidRegistration) {
			t.Fatalf("%s: expected ErrInvalidRegistration, got %v", name, err)
		}
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, codec := newTestAuthService(repo)
	registered := registerAlice(t, svc)

	token, user, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	identity, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("issued token does not decode: %v", err)
	}
	if identity.Username != "alice" || identity.UserID != registered.ID {
		t.Fatalf("token asserts wrong identity: %+v", identity)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)
	registerAlice(t, svc)

	_, _, wrongPassword := svc.Login(context.Background(), "alice", "nope")
	_, _, unknownUser := svc.Login(context.Background(), "ghost", "nope")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	// Unknown username must be indistinguishable from a wrong password.
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)
	user := registerAlice(t, svc)
	identity := auth.Identity{Username: user.Username, UserID: user.ID}
	originalHash := repo.users[user.ID].PasswordHash

	// Wrong current password: generic failure, hash untouched.
	err := svc.ChangePassword(context.Background(), identity, "wrong", "pw2")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if repo.users[user.ID].PasswordHash != originalHash {
		t.Fatalf("stored hash changed on failed attempt")
	}

	// Correct current password: hash replaced, old password dead.
	if err := svc.ChangePassword(context.Background(), identity, "pw1", "pw2"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	newHash := repo.users[user.ID].PasswordHash
	if newHash == originalHash {
		t.Fatalf("stored hash not replaced")
	}
	if auth.CheckPassword("pw1", newHash) {
		t.Fatalf("old password still verifies")
	}
	if !auth.CheckPassword("pw2", newHash) {
		t.Fatalf("new password does not verify")
	}
}

func TestAuthService_ChangePassword_StaleIdentity(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	// Identity points at an account that no longer exists.
	err := svc.ChangePassword(context.Background(), auth.Identity{Username: "ghost", UserID: 99}, "pw", "pw2")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for stale identity, got %v", err)
	}
}

func TestAuthService_DeleteAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)
	user := registerAlice(t, svc)

	if err := svc.DeleteAccount(context.Background(), auth.Identity{Username: user.Username, UserID: user.ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("account still present after delete")
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)
	user := registerAlice(t, svc)

	got, err := svc.CurrentUser(context.Background(), auth.Identity{Username: user.Username, UserID: user.ID})
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if got.Username != "alice" || got.ID != user.ID {
		t.Fatalf("unexpected user: %+v", got)
	}
}
