package ports

import (
	"context"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
