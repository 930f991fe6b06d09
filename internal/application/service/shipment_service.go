package service

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/enum"
	"github.com/tr4cking/admin-api/internal/domain/repository"
	"github.com/tr4cking/admin-api/pkg/apperror"
	"github.com/tr4cking/admin-api/pkg/voucher"
)

// ShipmentService handles the encomienda workflow: CRUD with derived
// pricing, the joined form data the screen needs, and the PDF voucher.
type ShipmentService struct {
	shipmentRepo repository.ShipmentRepository
	clientRepo   repository.ClientRepository
	travelRepo   repository.TravelRepository
}

// NewShipmentService creates a new shipment service
func NewShipmentService(
	shipmentRepo repository.ShipmentRepository,
	clientRepo repository.ClientRepository,
	travelRepo repository.TravelRepository,
) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		clientRepo:   clientRepo,
		travelRepo:   travelRepo,
	}
}

// FormData is everything the shipment screen loads at mount.
type FormData struct {
	Clients   []entity.Client   `json:"clientes"`
	Trips     []entity.Trip     `json:"viajes"`
	Stops     []entity.Stop     `json:"paradas"`
	Shipments []entity.Shipment `json:"encomiendas"`
}

// ShipmentInput is the shipment form. The per-unit freight rates are form
// inputs only; the backend stores just the computed total.
type ShipmentInput struct {
	ClientID      int64
	TripID        int64
	OriginID      int64
	DestinationID int64
	Envelope      bool
	EnvelopeCount int
	EnvelopeRate  entity.Amount
	Package       bool
	PackageCount  int
	PackageRate   entity.Amount
	Sender        string
	TaxID         string
	Contact       string
	Description   string
}

// Freight derives the total charge: envelopes and packages priced per unit,
// with the unselected kind contributing nothing.
func (in *ShipmentInput) Freight() entity.Amount {
	var total int64
	if in.Envelope {
		total += int64(in.EnvelopeCount) * in.EnvelopeRate.Int64()
	}
	if in.Package {
		total += int64(in.PackageCount) * in.PackageRate.Int64()
	}
	return entity.Amount(total)
}

// FormData fetches the four collections the shipment screen joins,
// concurrently; one failure fails the whole load with a single error.
func (s *ShipmentService) FormData(ctx context.Context) (*FormData, error) {
	var data FormData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Clients, err = s.clientRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Trips, err = s.travelRepo.ListTrips(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Stops, err = s.travelRepo.ListStops(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Shipments, err = s.shipmentRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		appErr := apperror.GetAppError(err)
		return nil, apperror.NewAppError(appErr.Code, "Failed to load shipment form data: "+appErr.Message)
	}
	return &data, nil
}

// List fetches the full shipment collection.
func (s *ShipmentService) List(ctx context.Context) ([]entity.Shipment, error) {
	return s.shipmentRepo.List(ctx)
}

func (s *ShipmentService) buildWrite(input *ShipmentInput) (*entity.ShipmentWrite, error) {
	kind, ok := enum.DeriveShipmentKind(input.Envelope, input.Package)
	if !ok {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "tipo_envio", Message: "Select at least one shipment kind"},
		})
	}

	write := &entity.ShipmentWrite{
		Trip:        input.TripID,
		Client:      input.ClientID,
		Origin:      input.OriginID,
		Destination: input.DestinationID,
		Freight:     input.Freight(),
		Sender:      input.Sender,
		TaxID:       input.TaxID,
		Contact:     input.Contact,
		Kind:        kind,
		Description: input.Description,
	}
	// Zero-fill the unselected kind so stale form values never persist.
	if input.Envelope {
		write.EnvelopeCount = input.EnvelopeCount
	}
	if input.Package {
		write.PackageCount = input.PackageCount
	}
	return write, nil
}

// Create validates and persists a new shipment, then refetches the full
// collection; the caller always renders backend truth, never an optimistic
// merge.
func (s *ShipmentService) Create(ctx context.Context, input *ShipmentInput) ([]entity.Shipment, error) {
	write, err := s.buildWrite(input)
	if err != nil {
		return nil, err
	}
	if _, err := s.shipmentRepo.Create(ctx, write); err != nil {
		return nil, err
	}
	return s.shipmentRepo.List(ctx)
}

// Update validates and replaces a shipment, then refetches the collection.
func (s *ShipmentService) Update(ctx context.Context, id int64, input *ShipmentInput) ([]entity.Shipment, error) {
	write, err := s.buildWrite(input)
	if err != nil {
		return nil, err
	}
	if _, err := s.shipmentRepo.Update(ctx, id, write); err != nil {
		return nil, err
	}
	return s.shipmentRepo.List(ctx)
}

// Delete removes a shipment and refetches the collection.
func (s *ShipmentService) Delete(ctx context.Context, id int64) ([]entity.Shipment, error) {
	if err := s.shipmentRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.shipmentRepo.List(ctx)
}

// Preview joins a shipment with its client, trip and stops purely for
// display and for the voucher.
func (s *ShipmentService) Preview(ctx context.Context, id int64) (*voucher.Voucher, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v := &voucher.Voucher{
		Shipment: voucher.ShipmentSection{
			ID:            shipment.ID,
			Kind:          shipment.Kind.String(),
			Sender:        shipment.Sender,
			TaxID:         shipment.TaxID,
			Contact:       shipment.Contact,
			EnvelopeCount: shipment.EnvelopeCount,
			PackageCount:  shipment.PackageCount,
			Description:   shipment.Description,
		},
		Total: shipment.Freight.Int64(),
	}

	var (
		client      *entity.Client
		trip        *entity.Trip
		origin      *entity.Stop
		destination *entity.Stop
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		client, err = s.clientRepo.GetByID(gctx, shipment.Client.Int64())
		return err
	})
	g.Go(func() error {
		var err error
		trip, err = s.travelRepo.GetTrip(gctx, shipment.Trip.Int64())
		return err
	})
	g.Go(func() error {
		var err error
		origin, err = s.travelRepo.GetStop(gctx, shipment.Origin.Int64())
		return err
	})
	g.Go(func() error {
		var err error
		destination, err = s.travelRepo.GetStop(gctx, shipment.Destination.Int64())
		return err
	})
	if err := g.Wait(); err != nil {
		appErr := apperror.GetAppError(err)
		return nil, apperror.NewAppError(appErr.Code, "Failed to assemble voucher data: "+appErr.Message)
	}

	v.Client = voucher.ClientSection{Name: client.RazonSocial, RUC: client.RUC()}
	v.Trip = voucher.TripSection{
		Date:        trip.Date,
		BusPlate:    trip.Bus.Placa,
		Origin:      origin.Nombre,
		Destination: destination.Nombre,
	}
	return v, nil
}

// VoucherPDF renders the printable voucher for a shipment.
func (s *ShipmentService) VoucherPDF(ctx context.Context, id int64) ([]byte, error) {
	data, err := s.Preview(ctx, id)
	if err != nil {
		return nil, err
	}
	return voucher.Render(data)
}

// VoucherFilename names the downloaded document.
func VoucherFilename(id int64) string {
	return "comprobante-encomienda-" + strconv.FormatInt(id, 10) + ".pdf"
}
