package ports

import (
	"context"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// Create must fail with domain.ErrEmailTaken on a duplicate email even when
// two requests race past an application-level existence check; the unique
// index on the users collection is the authority.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
