package entity

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one row of an invoice draft. Quantity is editable in place.
type LineItem struct {
	Code        string `json:"codigo"`
	Description string `json:"descripcion"`
	Quantity    int    `json:"cantidad"`
	Price       Amount `json:"precio"`
}

func (li *LineItem) Subtotal() Amount {
	return Amount(int64(li.Quantity) * li.Price.Int64())
}

// ClientSnapshot is the client block of a draft; filled from the client
// picker or typed by hand.
type ClientSnapshot struct {
	RUC  string `json:"ruc"`
	Name string `json:"nombre"`
}

// InvoiceDraft is the in-memory invoice being assembled on the invoicing
// screen. It is never persisted to the backend; the draft store discards it
// when its TTL lapses.
type InvoiceDraft struct {
	ID          uuid.UUID      `json:"id"`
	Number      string         `json:"numero"`
	Date        string         `json:"fecha"`
	Terms       string         `json:"termino"`
	Client      ClientSnapshot `json:"cliente"`
	Items       []LineItem     `json:"servicios"`
	Generated   bool           `json:"generada"`
	GeneratedAt *time.Time     `json:"fecha_generacion,omitempty"`
	CreatedAt   time.Time      `json:"fecha_creacion"`
}

// Total folds the line items: Σ(quantity × price).
func (d *InvoiceDraft) Total() Amount {
	var total int64
	for i := range d.Items {
		total += d.Items[i].Subtotal().Int64()
	}
	return Amount(total)
}
