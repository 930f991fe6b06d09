package enum

import (
	"encoding/json"
	"strings"
)

// HeaderEvent is the tipo_mov of a cabecera-caja row: the header record
// marking a register session's open or close event.
type HeaderEvent int

const (
	HeaderEventOpen  HeaderEvent = 0
	HeaderEventClose HeaderEvent = 1
)

func (e HeaderEvent) String() string {
	return [...]string{"Apertura", "Cierre"}[e]
}

func (e HeaderEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *HeaderEvent) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch strings.ToLower(str) {
	case "apertura":
		*e = HeaderEventOpen
	case "cierre":
		*e = HeaderEventClose
	}
	return nil
}

// MovementKind is the tipo_transaccion of a detalle-caja line. The backend
// stores free-form strings; the console only ever writes Ingreso and Egreso.
type MovementKind int

const (
	MovementKindIncome  MovementKind = 0
	MovementKindExpense MovementKind = 1
)

func (k MovementKind) String() string {
	return [...]string{"Ingreso", "Egreso"}[k]
}

func (k MovementKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *MovementKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch strings.ToLower(str) {
	case "ingreso", "apertura":
		// Legacy rows created before the console wrote opening deposits as
		// Ingreso carry tipo_transaccion "Apertura"; treat them as income.
		*k = MovementKindIncome
	default:
		*k = MovementKindExpense
	}
	return nil
}
