package auth

import (
	"context"

	"bookhub/internal/domain"
)

// UserRepository is what the auth service needs from user storage.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.UserRole) error
	SetActive(ctx context.Context, id string, active bool) error
}

type TokenIssuer interface {
	GenerateToken(userID, role string) (string, error)
}
