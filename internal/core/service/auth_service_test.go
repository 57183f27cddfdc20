package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@x.com", "Secret123!")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected role customer, got %s", user.Role)
	}
	if user.PasswordHash == "Secret123!" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret123!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "alice@x.com", "pw"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// Same username and email: the username check wins and short-circuits.
	if _, err := svc.Register(context.Background(), "alice", "alice@x.com", "pw"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate register created a second record")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "alice@x.com", "pw"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "alice@x.com", "pw"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, err := svc.Register(context.Background(), "carol", "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["id"] != created.ID {
		t.Fatalf("expected id claim %s, got %v", created.ID, claims["id"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), "dave", "dave@x.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Login(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_CaseSensitiveUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), "Erin", "erin@x.com", "pw")
	if _, _, err := svc.Login(context.Background(), "erin", "pw"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for case mismatch, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, err := svc.Register(context.Background(), "frank", "frank@x.com", "oldpass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), created.ID, "oldpass", "newpass"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "frank", "newpass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "frank", "oldpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected old password to be rejected, got %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _ := svc.Register(context.Background(), "gina", "gina@x.com", "rightpass")
	if err := svc.ChangePassword(context.Background(), created.ID, "wrongpass", "newpass"); !errors.Is(err, domain.ErrInvalidOldPassword) {
		t.Fatalf("expected ErrInvalidOldPassword, got %v", err)
	}
}

func TestAuthService_ChangePassword_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if err := svc.ChangePassword(context.Background(), "missing", "a", "b"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _ := svc.Register(context.Background(), "hank", "hank@x.com", "pw")

	user, err := svc.GetUserByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if user.Username != "hank" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetUserByID(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
