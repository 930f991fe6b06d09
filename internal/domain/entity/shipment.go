package entity

import (
	"time"

	"github.com/tr4cking/admin-api/internal/domain/enum"
)

// Shipment mirrors an encomienda record. Origin and destination arrive as
// route-detail references that normalize down to stop ids.
type Shipment struct {
	ID            int64             `json:"id_encomienda"`
	Trip          RefID             `json:"viaje"`
	Client        RefID             `json:"cliente"`
	Origin        RefID             `json:"origen"`
	Destination   RefID             `json:"destino"`
	Freight       Amount            `json:"flete"`
	Sender        string            `json:"remitente"`
	TaxID         string            `json:"ruc_ci"`
	Contact       string            `json:"numero_contacto"`
	Kind          enum.ShipmentKind `json:"tipo_envio"`
	EnvelopeCount int               `json:"cantidad_sobre"`
	PackageCount  int               `json:"cantidad_paquete"`
	Description   string            `json:"descripcion"`
	CreatedAt     time.Time         `json:"fecha_creacion,omitempty"`
	UpdatedAt     time.Time         `json:"fecha_actualizacion,omitempty"`
}

// ShipmentWrite is the payload sent on create and update. The backend owns
// the id and the timestamps, so only the editable fields go on the wire.
type ShipmentWrite struct {
	Trip          int64             `json:"viaje"`
	Client        int64             `json:"cliente"`
	Origin        int64             `json:"origen"`
	Destination   int64             `json:"destino"`
	Freight       Amount            `json:"flete"`
	Sender        string            `json:"remitente"`
	TaxID         string            `json:"ruc_ci"`
	Contact       string            `json:"numero_contacto"`
	Kind          enum.ShipmentKind `json:"tipo_envio"`
	EnvelopeCount int               `json:"cantidad_sobre"`
	PackageCount  int               `json:"cantidad_paquete"`
	Description   string            `json:"descripcion"`
}
