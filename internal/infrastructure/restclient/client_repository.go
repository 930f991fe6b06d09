package restclient

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/repository"
)

type clientRepository struct {
	clientes *Resource
}

// NewClientRepository creates a ClientRepository over the clientes resource.
func NewClientRepository(factory *Factory) repository.ClientRepository {
	return &clientRepository{clientes: factory.Resource("clientes")}
}

func (r *clientRepository) List(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	if err := r.clientes.List(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	var client entity.Client
	if err := r.clientes.Get(ctx, id, &client); err != nil {
		return nil, err
	}
	return &client, nil
}
