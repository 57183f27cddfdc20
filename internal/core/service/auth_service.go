package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tablebook/reservation-system/internal/api/metrics"
	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

// bcryptCost matches the work factor the original deployment used; stored
// hashes created with it must keep verifying after a redeploy.
const bcryptCost = 8

// AuthService implements registration, login and password change.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a new customer account. The username check runs before the
// email check and short-circuits it, so a request that collides on both only
// ever reports the username conflict. The check-then-insert sequence is not
// atomic across round-trips; the unique indexes on the users collection catch
// the losing writer of a concurrent race and the insert error maps to the same
// conflict errors.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("Unable to fetch user: %w", err)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("Unable to fetch user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("username", username).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a signed token embedding the user id.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			return "", nil, domain.ErrUserNotFound
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", nil, fmt.Errorf("Unable to fetch user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("username", username).Msg("user logged in")
	return token, user, nil
}

// ChangePassword re-hashes and persists a new password after verifying the
// old one against the stored hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("Unable to fetch user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrInvalidOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("Unable to update user: %w", err)
	}

	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("Unable to fetch user: %w", err)
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("Unable to fetch users: %w", err)
	}
	return users, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":  user.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
