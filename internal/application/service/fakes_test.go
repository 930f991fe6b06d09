package service

import (
	"context"
	"time"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/enum"
	"github.com/tr4cking/admin-api/pkg/apperror"
)

// In-memory repository fakes standing in for the remote backend.

type fakeRegisterRepo struct {
	registers map[int64]*entity.CashRegister
	headers   []entity.SessionHeader
	movements []entity.CashMovement
	nextID    int64
}

func newFakeRegisterRepo() *fakeRegisterRepo {
	return &fakeRegisterRepo{registers: make(map[int64]*entity.CashRegister)}
}

func (f *fakeRegisterRepo) next() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeRegisterRepo) GetRegister(_ context.Context, id int64) (*entity.CashRegister, error) {
	register, ok := f.registers[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Register")
	}
	copied := *register
	return &copied, nil
}

func (f *fakeRegisterRepo) CreateRegister(_ context.Context, register *entity.CashRegister) error {
	register.ID = f.next()
	copied := *register
	f.registers[register.ID] = &copied
	return nil
}

func (f *fakeRegisterRepo) PatchRegisterState(_ context.Context, id int64, state enum.RegisterState) error {
	register, ok := f.registers[id]
	if !ok {
		return apperror.NewNotFoundError("Register")
	}
	register.State = state
	return nil
}

func (f *fakeRegisterRepo) ListHeaders(_ context.Context) ([]entity.SessionHeader, error) {
	return append([]entity.SessionHeader(nil), f.headers...), nil
}

func (f *fakeRegisterRepo) CreateHeader(_ context.Context, header *entity.SessionHeader) error {
	header.ID = f.next()
	f.headers = append(f.headers, *header)
	return nil
}

func (f *fakeRegisterRepo) UpdateHeader(_ context.Context, header *entity.SessionHeader) error {
	for i := range f.headers {
		if f.headers[i].ID == header.ID {
			f.headers[i] = *header
			return nil
		}
	}
	return apperror.NewNotFoundError("Header")
}

func (f *fakeRegisterRepo) ListMovements(_ context.Context) ([]entity.CashMovement, error) {
	return append([]entity.CashMovement(nil), f.movements...), nil
}

func (f *fakeRegisterRepo) CreateMovement(_ context.Context, movement *entity.CashMovement) error {
	movement.ID = f.next()
	f.movements = append(f.movements, *movement)
	return nil
}

type fakeCatalogRepo struct {
	employees    map[int64]*entity.Employee
	reservations []entity.Reservation
	services     []entity.ServiceRecord
}

func (f *fakeCatalogRepo) ListReservations(_ context.Context) ([]entity.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeCatalogRepo) ListServices(_ context.Context) ([]entity.ServiceRecord, error) {
	return f.services, nil
}

func (f *fakeCatalogRepo) GetEmployee(_ context.Context, id int64) (*entity.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

type fakeClientRepo struct {
	clients []entity.Client
}

func (f *fakeClientRepo) List(_ context.Context) ([]entity.Client, error) {
	return f.clients, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	for i := range f.clients {
		if f.clients[i].ID == id {
			return &f.clients[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Client")
}

type fakeShipmentRepo struct {
	shipments []entity.Shipment
	nextID    int64
}

func fromWrite(id int64, write *entity.ShipmentWrite) entity.Shipment {
	return entity.Shipment{
		ID:            id,
		Trip:          entity.RefID(write.Trip),
		Client:        entity.RefID(write.Client),
		Origin:        entity.RefID(write.Origin),
		Destination:   entity.RefID(write.Destination),
		Freight:       write.Freight,
		Sender:        write.Sender,
		TaxID:         write.TaxID,
		Contact:       write.Contact,
		Kind:          write.Kind,
		EnvelopeCount: write.EnvelopeCount,
		PackageCount:  write.PackageCount,
		Description:   write.Description,
		CreatedAt:     time.Now(),
	}
}

func (f *fakeShipmentRepo) List(_ context.Context) ([]entity.Shipment, error) {
	return append([]entity.Shipment(nil), f.shipments...), nil
}

func (f *fakeShipmentRepo) GetByID(_ context.Context, id int64) (*entity.Shipment, error) {
	for i := range f.shipments {
		if f.shipments[i].ID == id {
			return &f.shipments[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Shipment")
}

func (f *fakeShipmentRepo) Create(_ context.Context, write *entity.ShipmentWrite) (*entity.Shipment, error) {
	f.nextID++
	created := fromWrite(f.nextID, write)
	f.shipments = append(f.shipments, created)
	return &created, nil
}

func (f *fakeShipmentRepo) Update(_ context.Context, id int64, write *entity.ShipmentWrite) (*entity.Shipment, error) {
	for i := range f.shipments {
		if f.shipments[i].ID == id {
			f.shipments[i] = fromWrite(id, write)
			return &f.shipments[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Shipment")
}

func (f *fakeShipmentRepo) Delete(_ context.Context, id int64) error {
	for i := range f.shipments {
		if f.shipments[i].ID == id {
			f.shipments = append(f.shipments[:i], f.shipments[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFoundError("Shipment")
}

type fakeTravelRepo struct {
	trips []entity.Trip
	stops []entity.Stop
}

func (f *fakeTravelRepo) ListTrips(_ context.Context) ([]entity.Trip, error) {
	return f.trips, nil
}

func (f *fakeTravelRepo) GetTrip(_ context.Context, id int64) (*entity.Trip, error) {
	for i := range f.trips {
		if f.trips[i].ID == id {
			return &f.trips[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Trip")
}

func (f *fakeTravelRepo) ListStops(_ context.Context) ([]entity.Stop, error) {
	return f.stops, nil
}

func (f *fakeTravelRepo) GetStop(_ context.Context, id int64) (*entity.Stop, error) {
	for i := range f.stops {
		if f.stops[i].ID == id {
			return &f.stops[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Stop")
}
