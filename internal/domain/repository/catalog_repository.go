package repository

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
)

// CatalogRepository covers the remaining read-only collections the selector
// modals and the cash report consume.
type CatalogRepository interface {
	ListReservations(ctx context.Context) ([]entity.Reservation, error)
	ListServices(ctx context.Context) ([]entity.ServiceRecord, error)
	GetEmployee(ctx context.Context, id int64) (*entity.Employee, error)
}
