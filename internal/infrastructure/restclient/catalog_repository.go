package restclient

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/repository"
)

type catalogRepository struct {
	reservas  *Resource
	servicios *Resource
	empleados *Resource
}

// NewCatalogRepository creates a CatalogRepository over reservas, servicios
// and empleados.
func NewCatalogRepository(factory *Factory) repository.CatalogRepository {
	return &catalogRepository{
		reservas:  factory.Resource("reservas"),
		servicios: factory.Resource("servicios"),
		empleados: factory.Resource("empleados"),
	}
}

func (r *catalogRepository) ListReservations(ctx context.Context) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	if err := r.reservas.List(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *catalogRepository) ListServices(ctx context.Context) ([]entity.ServiceRecord, error) {
	var services []entity.ServiceRecord
	if err := r.servicios.List(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *catalogRepository) GetEmployee(ctx context.Context, id int64) (*entity.Employee, error) {
	var employee entity.Employee
	if err := r.empleados.Get(ctx, id, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}
