package repository

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
)

// TravelRepository defines read access to viajes and paradas, the trip and
// stop collections shipments reference.
type TravelRepository interface {
	ListTrips(ctx context.Context) ([]entity.Trip, error)
	GetTrip(ctx context.Context, id int64) (*entity.Trip, error)
	ListStops(ctx context.Context) ([]entity.Stop, error)
	GetStop(ctx context.Context, id int64) (*entity.Stop, error)
}
