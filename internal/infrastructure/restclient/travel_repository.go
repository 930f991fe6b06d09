package restclient

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/repository"
)

type travelRepository struct {
	viajes  *Resource
	paradas *Resource
}

// NewTravelRepository creates a TravelRepository over viajes and paradas.
func NewTravelRepository(factory *Factory) repository.TravelRepository {
	return &travelRepository{
		viajes:  factory.Resource("viajes"),
		paradas: factory.Resource("paradas"),
	}
}

func (r *travelRepository) ListTrips(ctx context.Context) ([]entity.Trip, error) {
	var trips []entity.Trip
	if err := r.viajes.List(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *travelRepository) GetTrip(ctx context.Context, id int64) (*entity.Trip, error) {
	var trip entity.Trip
	if err := r.viajes.Get(ctx, id, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *travelRepository) ListStops(ctx context.Context) ([]entity.Stop, error) {
	var stops []entity.Stop
	if err := r.paradas.List(ctx, &stops); err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *travelRepository) GetStop(ctx context.Context, id int64) (*entity.Stop, error) {
	var stop entity.Stop
	if err := r.paradas.Get(ctx, id, &stop); err != nil {
		return nil, err
	}
	return &stop, nil
}
