package repository

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
)

// ClientRepository defines read access to the clientes resource. Clients are
// read-only from the console's side; the backend owns their lifecycle.
type ClientRepository interface {
	List(ctx context.Context) ([]entity.Client, error)
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
}
