package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/enum"
	"github.com/tr4cking/admin-api/pkg/apperror"
)

func newInvoiceService() *InvoiceService {
	clientRepo := &fakeClientRepo{clients: []entity.Client{
		{ID: 1, Cedula: 4555111, DV: "8", RazonSocial: "Juan Perez"},
	}}
	shipmentRepo := &fakeShipmentRepo{shipments: []entity.Shipment{{
		ID:      5,
		Kind:    enum.ShipmentKindBoth,
		Sender:  "Juan Perez",
		Freight: 80_000,
	}}}
	return NewInvoiceService(clientRepo, shipmentRepo, time.Minute)
}

func TestNewDraftDefaults(t *testing.T) {
	svc := newInvoiceService()
	draft := svc.NewDraft()

	if draft.Number != "0001" || draft.Terms != "Contado" {
		t.Errorf("defaults: %+v", draft)
	}
	if draft.Date != time.Now().Format("2006-01-02") {
		t.Errorf("date: %q", draft.Date)
	}
	if draft.Total != 0 || len(draft.Items) != 0 {
		t.Errorf("empty draft: %+v", draft)
	}
}

func TestDraftTotalIsSumOfSubtotals(t *testing.T) {
	svc := newInvoiceService()
	draft := svc.NewDraft()

	if _, err := svc.AddItem(draft.ID, entity.LineItem{Code: "A", Description: "Pasaje", Quantity: 2, Price: 50_000}); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, err := svc.AddItem(draft.ID, entity.LineItem{Code: "B", Description: "Encomienda", Quantity: 1, Price: 30_000})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if view.Total != 130_000 {
		t.Errorf("total: got %d, want 130000", view.Total)
	}

	view, err = svc.UpdateItemQuantity(draft.ID, 0, 3)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if view.Total != 180_000 {
		t.Errorf("total after quantity edit: got %d, want 180000", view.Total)
	}

	view, err = svc.RemoveItem(draft.ID, 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if view.Total != 150_000 {
		t.Errorf("total after removal: got %d, want 150000", view.Total)
	}
}

func TestDraftViewDoesNotAliasStoredItems(t *testing.T) {
	svc := newInvoiceService()
	draft := svc.NewDraft()

	if _, err := svc.AddItem(draft.ID, entity.LineItem{Code: "A", Description: "Pasaje", Quantity: 2, Price: 10_000}); err != nil {
		t.Fatalf("add: %v", err)
	}
	before, err := svc.Get(draft.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if _, err := svc.UpdateItemQuantity(draft.ID, 0, 7); err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	if got := before.Items[0].Quantity; got != 2 {
		t.Errorf("earlier view quantity: got %d, want 2", got)
	}
	if before.Total != 20_000 {
		t.Errorf("earlier view total: got %d, want 20000", before.Total)
	}
}

func TestConcurrentReadsAndQuantityEdits(t *testing.T) {
	svc := newInvoiceService()
	draft := svc.NewDraft()
	if _, err := svc.AddItem(draft.ID, entity.LineItem{Code: "A", Description: "Pasaje", Quantity: 1, Price: 10_000}); err != nil {
		t.Fatalf("add: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				view, err := svc.Get(draft.ID)
				if err != nil {
					t.Errorf("get: %v", err)
					return
				}
				if _, err := json.Marshal(view); err != nil {
					t.Errorf("marshal: %v", err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 1; j <= 50; j++ {
				if _, err := svc.UpdateItemQuantity(draft.ID, 0, j); err != nil {
					t.Errorf("update quantity: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestAddItemRequiresCodeAndDescription(t *testing.T) {
	svc := newInvoiceService()
	draft := svc.NewDraft()

	_, err := svc.AddItem(draft.ID, entity.LineItem{Code: " ", Description: "x", Price: 1})
	if apperror.GetAppError(err).Code != 422 {
		t.Errorf("blank code: got %v", err)
	}
	_, err = svc.AddItem(draft.ID, entity.LineItem{Code: "x", Description: "", Price: 1})
	if apperror.GetAppError(err).Code != 422 {
		t.Errorf("blank description: got %v", err)
	}
}

func TestPickClientFillsSnapshot(t *testing.T) {
	svc := newInvoiceService()
	draft := svc.NewDraft()

	view, err := svc.PickClient(context.Background(), draft.ID, 1)
	if err != nil {
		t.Fatalf("pick client: %v", err)
	}
	if view.Client.RUC != "4555111-8" || view.Client.Name != "Juan Perez" {
		t.Errorf("client snapshot: %+v", view.Client)
	}
}

func TestPickShipmentMapsLineItem(t *testing.T) {
	svc := newInvoiceService()
	draft := svc.NewDraft()

	view, err := svc.PickShipment(context.Background(), draft.ID, 5)
	if err != nil {
		t.Fatalf("pick shipment: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items: %+v", view.Items)
	}
	item := view.Items[0]
	if item.Code != "5" || item.Description != "ambos - Juan Perez" {
		t.Errorf("item mapping: %+v", item)
	}
	if item.Quantity != 1 || item.Price != 80_000 {
		t.Errorf("item quantity/price: %+v", item)
	}
}

func TestGenerateMarksDraft(t *testing.T) {
	svc := newInvoiceService()
	draft := svc.NewDraft()

	view, err := svc.Generate(draft.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !view.Generated || view.GeneratedAt == nil {
		t.Errorf("generated flags: %+v", view)
	}
}

func TestDiscardAndUnknownDraft(t *testing.T) {
	svc := newInvoiceService()
	draft := svc.NewDraft()

	svc.Discard(draft.ID)
	if _, err := svc.Get(draft.ID); apperror.GetAppError(err).Code != 404 {
		t.Errorf("discarded draft: got %v", err)
	}
	if _, err := svc.Get(uuid.New()); apperror.GetAppError(err).Code != 404 {
		t.Errorf("unknown draft: got %v", err)
	}
}
