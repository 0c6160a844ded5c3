package ports

import (
	"context"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
