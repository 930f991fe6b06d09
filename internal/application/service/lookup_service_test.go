package service

import (
	"context"
	"testing"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/enum"
	"github.com/tr4cking/admin-api/pkg/apperror"
)

func newLookupService() *LookupService {
	clientRepo := &fakeClientRepo{clients: []entity.Client{
		{ID: 1, Cedula: 4555111, DV: "8", RazonSocial: "Juan Perez"},
		{ID: 2, Cedula: 2333444, DV: "1", RazonSocial: "Maria Gomez"},
	}}
	shipmentRepo := &fakeShipmentRepo{shipments: []entity.Shipment{
		{ID: 5, Kind: enum.ShipmentKindEnvelope, Sender: "Juan Perez", Freight: 10_000},
	}}
	catalogRepo := &fakeCatalogRepo{
		services: []entity.ServiceRecord{
			{ID: 9, Client: "Juan Perez", Kind: "Pasaje", Price: 50_000},
		},
	}
	return NewLookupService(clientRepo, shipmentRepo, catalogRepo)
}

func TestLookupClients(t *testing.T) {
	svc := newLookupService()

	options, err := svc.Options(context.Background(), LookupClients, "")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("got %d options", len(options))
	}
	if options[0].Columns["ruc"] != "4555111-8" {
		t.Errorf("ruc column: %+v", options[0])
	}
}

func TestLookupFilterMatchesAnyColumn(t *testing.T) {
	svc := newLookupService()
	ctx := context.Background()

	byName, err := svc.Options(ctx, LookupClients, "maria")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != 2 {
		t.Errorf("name filter: %+v", byName)
	}

	byRUC, err := svc.Options(ctx, LookupClients, "4555111")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(byRUC) != 1 || byRUC[0].ID != 1 {
		t.Errorf("ruc filter: %+v", byRUC)
	}
}

func TestLookupShipmentsAndServices(t *testing.T) {
	svc := newLookupService()
	ctx := context.Background()

	shipments, err := svc.Options(ctx, LookupShipments, "")
	if err != nil {
		t.Fatalf("shipments: %v", err)
	}
	if len(shipments) != 1 || shipments[0].Label != "sobre - Juan Perez" {
		t.Errorf("shipment options: %+v", shipments)
	}

	services, err := svc.Options(ctx, LookupServices, "")
	if err != nil {
		t.Fatalf("services: %v", err)
	}
	if len(services) != 1 || services[0].Columns["precio"] != "50000" {
		t.Errorf("service options: %+v", services)
	}
}

func TestLookupUnknownResource(t *testing.T) {
	svc := newLookupService()
	_, err := svc.Options(context.Background(), "facturas", "")
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("got %v, want 404", err)
	}
}
