package repository

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
)

// AuthRepository defines the backend authentication calls. All three operate
// on the backend session carried in the context.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*entity.User, error)
}
