package repository

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
)

// ShipmentRepository defines CRUD over the encomiendas resource.
type ShipmentRepository interface {
	List(ctx context.Context) ([]entity.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entity.Shipment, error)
	Create(ctx context.Context, write *entity.ShipmentWrite) (*entity.Shipment, error)
	Update(ctx context.Context, id int64, write *entity.ShipmentWrite) (*entity.Shipment, error)
	Delete(ctx context.Context, id int64) error
}
