package restclient

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/repository"
)

type authRepository struct {
	auth  *Resource
	users *Resource
}

// NewAuthRepository creates an AuthRepository over auth and users.
func NewAuthRepository(factory *Factory) repository.AuthRepository {
	return &authRepository{
		auth:  factory.Resource("auth"),
		users: factory.Resource("users"),
	}
}

func (r *authRepository) Login(ctx context.Context, email, password string) error {
	// Prime the session so the backend issues a csrftoken cookie before the
	// mutating login call; the browser got this for free on page load.
	var probe entity.User
	_ = r.users.GetPath(ctx, "current", &probe)

	body := map[string]string{
		"email":    email,
		"password": password,
	}
	return r.auth.Create(ctx, body, nil)
}

func (r *authRepository) Logout(ctx context.Context) error {
	return r.auth.Post(ctx, "logout", map[string]any{}, nil)
}

func (r *authRepository) CurrentUser(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := r.users.GetPath(ctx, "current", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
