package entity

import "time"

// ReservationClient is the expanded cliente_details a reservation carries.
type ReservationClient struct {
	ID          int64    `json:"id_cliente"`
	Cedula      RefID    `json:"cedula"`
	DV          string   `json:"dv"`
	RazonSocial string   `json:"razon_social"`
	Persona     *Persona `json:"persona_details"`
}

// Reservation mirrors a cabecera-reserva record as the selector modal
// consumes it.
type Reservation struct {
	ID            int64              `json:"id_reserva"`
	Client        RefID              `json:"cliente"`
	ClientDetails *ReservationClient `json:"cliente_details"`
	ReservedAt    time.Time          `json:"fecha_reserva"`
	Estado        string             `json:"estado"`
}

// ServiceRecord is a billable service row offered to the invoicing screen.
type ServiceRecord struct {
	ID        int64  `json:"id"`
	Client    string `json:"cliente"`
	Kind      string `json:"tipo"`
	CreatedAt string `json:"fecha_creacion"`
	Price     Amount `json:"precio"`
}
