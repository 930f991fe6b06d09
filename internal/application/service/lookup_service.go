package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/repository"
	"github.com/tr4cking/admin-api/pkg/apperror"
)

// Lookup resources served to the selector modals.
const (
	LookupClients      = "clientes"
	LookupShipments    = "encomiendas"
	LookupReservations = "reservas"
	LookupServices     = "servicios"
)

// Option is one selectable row of a lookup modal: the reference to send
// back plus the columns the modal displays.
type Option struct {
	ID      int64             `json:"id"`
	Label   string            `json:"label"`
	Columns map[string]string `json:"columns"`
}

// LookupService serves the selector modals: one searchable option list per
// resource, filtered server-side so the modal stays a dumb table.
type LookupService struct {
	clientRepo   repository.ClientRepository
	shipmentRepo repository.ShipmentRepository
	catalogRepo  repository.CatalogRepository
}

func NewLookupService(
	clientRepo repository.ClientRepository,
	shipmentRepo repository.ShipmentRepository,
	catalogRepo repository.CatalogRepository,
) *LookupService {
	return &LookupService{
		clientRepo:   clientRepo,
		shipmentRepo: shipmentRepo,
		catalogRepo:  catalogRepo,
	}
}

// Options lists the selectable rows for a resource, optionally filtered by a
// case-insensitive substring match over every displayed column.
func (s *LookupService) Options(ctx context.Context, resource, query string) ([]Option, error) {
	var (
		options []Option
		err     error
	)
	switch resource {
	case LookupClients:
		options, err = s.clientOptions(ctx)
	case LookupShipments:
		options, err = s.shipmentOptions(ctx)
	case LookupReservations:
		options, err = s.reservationOptions(ctx)
	case LookupServices:
		options, err = s.serviceOptions(ctx)
	default:
		return nil, apperror.NewNotFoundError("Lookup resource " + resource)
	}
	if err != nil {
		return nil, err
	}
	return filterOptions(options, query), nil
}

func (s *LookupService) clientOptions(ctx context.Context) ([]Option, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]Option, 0, len(clients))
	for i := range clients {
		c := &clients[i]
		options = append(options, Option{
			ID:    c.ID,
			Label: c.RazonSocial,
			Columns: map[string]string{
				"ruc":          c.RUC(),
				"razon_social": c.RazonSocial,
			},
		})
	}
	return options, nil
}

func (s *LookupService) shipmentOptions(ctx context.Context) ([]Option, error) {
	shipments, err := s.shipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]Option, 0, len(shipments))
	for i := range shipments {
		sh := &shipments[i]
		options = append(options, Option{
			ID:    sh.ID,
			Label: sh.Kind.String() + " - " + sh.Sender,
			Columns: map[string]string{
				"tipo_envio": sh.Kind.String(),
				"remitente":  sh.Sender,
				"ruc_ci":     sh.TaxID,
				"flete":      strconv.FormatInt(sh.Freight.Int64(), 10),
			},
		})
	}
	return options, nil
}

func (s *LookupService) reservationOptions(ctx context.Context) ([]Option, error) {
	reservations, err := s.catalogRepo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]Option, 0, len(reservations))
	for i := range reservations {
		r := &reservations[i]
		options = append(options, Option{
			ID:    r.ID,
			Label: reservationLabel(r),
			Columns: map[string]string{
				"cliente":       reservationLabel(r),
				"fecha_reserva": r.ReservedAt.Format("2006-01-02"),
				"estado":        r.Estado,
			},
		})
	}
	return options, nil
}

func reservationLabel(r *entity.Reservation) string {
	if r.ClientDetails != nil {
		if p := r.ClientDetails.Persona; p != nil && p.Nombre != "" {
			return p.Nombre + " " + p.Apellido
		}
		if r.ClientDetails.RazonSocial != "" {
			return r.ClientDetails.RazonSocial
		}
	}
	return fmt.Sprintf("Reserva %d", r.ID)
}

func (s *LookupService) serviceOptions(ctx context.Context) ([]Option, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]Option, 0, len(services))
	for i := range services {
		sv := &services[i]
		options = append(options, Option{
			ID:    sv.ID,
			Label: sv.Kind,
			Columns: map[string]string{
				"cliente": sv.Client,
				"tipo":    sv.Kind,
				"precio":  strconv.FormatInt(sv.Price.Int64(), 10),
			},
		})
	}
	return options, nil
}

func filterOptions(options []Option, query string) []Option {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return options
	}
	filtered := make([]Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), query) {
			filtered = append(filtered, opt)
			continue
		}
		for _, v := range opt.Columns {
			if strings.Contains(strings.ToLower(v), query) {
				filtered = append(filtered, opt)
				break
			}
		}
	}
	return filtered
}
