package request

// ShipmentRequest is the shipment form. The checkbox flags select which
// kinds ship; counts and per-unit rates of an unselected kind are ignored.
type ShipmentRequest struct {
	ClientID      int64  `json:"cliente" binding:"required"`
	TripID        int64  `json:"viaje" binding:"required"`
	OriginID      int64  `json:"origen" binding:"required"`
	DestinationID int64  `json:"destino" binding:"required"`
	Envelope      bool   `json:"sobre"`
	EnvelopeCount int    `json:"cantidad_sobre" binding:"min=0"`
	EnvelopeRate  int64  `json:"precio_sobre" binding:"min=0"`
	Package       bool   `json:"paquete"`
	PackageCount  int    `json:"cantidad_paquete" binding:"min=0"`
	PackageRate   int64  `json:"precio_paquete" binding:"min=0"`
	Sender        string `json:"remitente" binding:"required"`
	TaxID         string `json:"ruc_ci"`
	Contact       string `json:"numero_contacto"`
	Description   string `json:"descripcion"`
}
