package ports

import (
	"context"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// AuthService covers account lifecycle and credential verification.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
