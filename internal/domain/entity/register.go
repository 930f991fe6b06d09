package entity

import (
	"time"

	"github.com/tr4cking/admin-api/internal/domain/enum"
)

// OpeningDescription tags the income movement written when a register opens.
const OpeningDescription = "Apertura de caja"

// ClosingDescriptionPrefix tags the synthetic movement written on close; the
// withdrawn amount is appended ("Cierre de caja - Retirado 20000").
const ClosingDescriptionPrefix = "Cierre de caja - Retirado "

// CashRegister mirrors a caja record.
type CashRegister struct {
	ID            int64              `json:"id"`
	Name          string             `json:"nombre"`
	State         enum.RegisterState `json:"estado"`
	CreatedDate   string             `json:"fecha_creacion"`
	OpeningAmount Amount             `json:"monto_inicial"`
}

// SessionHeader mirrors a cabecera-caja record: the header marking a
// register session's open or close event. The monto_inical spelling is the
// backend's own; the wire name cannot change.
type SessionHeader struct {
	ID            int64            `json:"id"`
	Event         enum.HeaderEvent `json:"tipo_mov"`
	MovedAt       time.Time        `json:"fecha_mov"`
	OpeningAmount Amount           `json:"monto_inical"`
	FinalAmount   Amount           `json:"monto_final"`
	Register      RefID            `json:"caja"`
	Employee      RefID            `json:"empleado"`
}

// IsOpenSession reports whether this header still marks an open session: an
// Apertura whose final amount has not been rewritten by a close.
func (h *SessionHeader) IsOpenSession() bool {
	return h.Event == enum.HeaderEventOpen && h.FinalAmount == h.OpeningAmount
}

// CashMovement mirrors a detalle-caja line. Movements are append-only; the
// console never mutates one after creation.
type CashMovement struct {
	ID          int64             `json:"id"`
	Description string            `json:"descripcion"`
	Kind        enum.MovementKind `json:"tipo_transaccion"`
	Amount      Amount            `json:"monto"`
	OccurredAt  time.Time         `json:"fecha_transaccion"`
	Invoice     *int64            `json:"factura"`
	Header      RefID             `json:"cabecera_caja"`
}

// IsOpening reports whether this line is the register's opening deposit.
func (m *CashMovement) IsOpening() bool {
	return m.Description == OpeningDescription
}
