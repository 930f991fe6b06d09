package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/repository"
	"github.com/tr4cking/admin-api/pkg/apperror"
)

// InvoiceService assembles invoice drafts in memory. Drafts never reach the
// backend: generating one only logs it. The backend has no facturas write
// contract for the console yet, so persistence stays an open requirement
// with its owner.
type InvoiceService struct {
	drafts       *gocache.Cache
	clientRepo   repository.ClientRepository
	shipmentRepo repository.ShipmentRepository

	mu sync.Mutex
}

// NewInvoiceService creates a new invoice service. Drafts are discarded
// after ttl of inactivity, like navigating away discarded them.
func NewInvoiceService(
	clientRepo repository.ClientRepository,
	shipmentRepo repository.ShipmentRepository,
	ttl time.Duration,
) *InvoiceService {
	return &InvoiceService{
		drafts:       gocache.New(ttl, ttl/2),
		clientRepo:   clientRepo,
		shipmentRepo: shipmentRepo,
	}
}

// DraftView is a draft plus its recomputed total.
type DraftView struct {
	*entity.InvoiceDraft
	Total entity.Amount `json:"total"`
}

// view snapshots the draft while the caller still holds the service lock.
// Handlers marshal the view after the lock is released, so it must not
// alias the cached draft or its items.
func view(draft *entity.InvoiceDraft) *DraftView {
	snapshot := *draft
	snapshot.Items = append([]entity.LineItem(nil), draft.Items...)
	return &DraftView{InvoiceDraft: &snapshot, Total: snapshot.Total()}
}

// NewDraft starts an empty draft with the screen's defaults.
func (s *InvoiceService) NewDraft() *DraftView {
	draft := &entity.InvoiceDraft{
		ID:        uuid.New(),
		Number:    "0001",
		Date:      time.Now().Format("2006-01-02"),
		Terms:     "Contado",
		Items:     []entity.LineItem{},
		CreatedAt: time.Now(),
	}
	s.drafts.Set(draft.ID.String(), draft, gocache.DefaultExpiration)
	return view(draft)
}

func (s *InvoiceService) get(id uuid.UUID) (*entity.InvoiceDraft, error) {
	value, found := s.drafts.Get(id.String())
	if !found {
		return nil, apperror.NewNotFoundError("Invoice draft")
	}
	draft, ok := value.(*entity.InvoiceDraft)
	if !ok {
		return nil, apperror.NewNotFoundError("Invoice draft")
	}
	s.drafts.Set(id.String(), draft, gocache.DefaultExpiration)
	return draft, nil
}

// Get returns a draft with its current total.
func (s *InvoiceService) Get(id uuid.UUID) (*DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return view(draft), nil
}

// HeaderInput updates the invoice header block.
type HeaderInput struct {
	Number string
	Date   string
	Terms  string
}

// SetHeader overwrites the header fields that were provided.
func (s *InvoiceService) SetHeader(id uuid.UUID, input *HeaderInput) (*DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if input.Number != "" {
		draft.Number = input.Number
	}
	if input.Date != "" {
		draft.Date = input.Date
	}
	if input.Terms != "" {
		draft.Terms = input.Terms
	}
	return view(draft), nil
}

// SetClient overwrites the client block with hand-typed values.
func (s *InvoiceService) SetClient(id uuid.UUID, snapshot entity.ClientSnapshot) (*DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.get(id)
	if err != nil {
		return nil, err
	}
	draft.Client = snapshot
	return view(draft), nil
}

// PickClient overwrites the client block from a backend client record, the
// way the client selector modal did: ruc as "cedula-dv", name from
// razon_social.
func (s *InvoiceService) PickClient(ctx context.Context, id uuid.UUID, clientID int64) (*DraftView, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.SetClient(id, entity.ClientSnapshot{
		RUC:  client.RUC(),
		Name: client.RazonSocial,
	})
}

// AddItem appends a line item; code and description are required.
func (s *InvoiceService) AddItem(id uuid.UUID, item entity.LineItem) (*DraftView, error) {
	if strings.TrimSpace(item.Code) == "" || strings.TrimSpace(item.Description) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "codigo", Message: "Code and description are required"},
		})
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.get(id)
	if err != nil {
		return nil, err
	}
	draft.Items = append(draft.Items, item)
	return view(draft), nil
}

// PickShipment maps a shipment into a line item: id as code, kind and
// sender as description, quantity one, the freight as price (zero when the
// shipment has none).
func (s *InvoiceService) PickShipment(ctx context.Context, id uuid.UUID, shipmentID int64) (*DraftView, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	return s.AddItem(id, entity.LineItem{
		Code:        strconv.FormatInt(shipment.ID, 10),
		Description: shipment.Kind.String() + " - " + shipment.Sender,
		Quantity:    1,
		Price:       shipment.Freight,
	})
}

// UpdateItemQuantity edits a line's quantity in place.
func (s *InvoiceService) UpdateItemQuantity(id uuid.UUID, index, quantity int) (*DraftView, error) {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(draft.Items) {
		return nil, apperror.NewNotFoundError("Line item")
	}
	draft.Items[index].Quantity = quantity
	return view(draft), nil
}

// RemoveItem drops a line item.
func (s *InvoiceService) RemoveItem(id uuid.UUID, index int) (*DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(draft.Items) {
		return nil, apperror.NewNotFoundError("Line item")
	}
	draft.Items = append(draft.Items[:index], draft.Items[index+1:]...)
	return view(draft), nil
}

// Generate logs the assembled draft and marks it generated. Nothing is
// persisted.
func (s *InvoiceService) Generate(id uuid.UUID) (*DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.get(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	draft.Generated = true
	draft.GeneratedAt = &now
	log.Printf("Invoice generated (not persisted): numero=%s cliente=%q items=%d total=%d",
		draft.Number, draft.Client.Name, len(draft.Items), draft.Total().Int64())
	return view(draft), nil
}

// Discard drops a draft, like the cancel button did.
func (s *InvoiceService) Discard(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts.Delete(id.String())
}
