package restclient

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/repository"
)

type shipmentRepository struct {
	encomiendas *Resource
}

// NewShipmentRepository creates a ShipmentRepository over encomiendas.
func NewShipmentRepository(factory *Factory) repository.ShipmentRepository {
	return &shipmentRepository{encomiendas: factory.Resource("encomiendas")}
}

func (r *shipmentRepository) List(ctx context.Context) ([]entity.Shipment, error) {
	var shipments []entity.Shipment
	if err := r.encomiendas.List(ctx, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *shipmentRepository) GetByID(ctx context.Context, id int64) (*entity.Shipment, error) {
	var shipment entity.Shipment
	if err := r.encomiendas.Get(ctx, id, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepository) Create(ctx context.Context, write *entity.ShipmentWrite) (*entity.Shipment, error) {
	var created entity.Shipment
	if err := r.encomiendas.Create(ctx, write, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *shipmentRepository) Update(ctx context.Context, id int64, write *entity.ShipmentWrite) (*entity.Shipment, error) {
	var updated entity.Shipment
	if err := r.encomiendas.Update(ctx, id, write, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *shipmentRepository) Delete(ctx context.Context, id int64) error {
	return r.encomiendas.Delete(ctx, id)
}
