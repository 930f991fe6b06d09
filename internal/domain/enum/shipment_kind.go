package enum

import (
	"encoding/json"
	"strings"
)

// ShipmentKind is the tipo_envio of an encomienda.
type ShipmentKind int

const (
	ShipmentKindEnvelope ShipmentKind = 0
	ShipmentKindPackage  ShipmentKind = 1
	ShipmentKindBoth     ShipmentKind = 2
)

func (k ShipmentKind) String() string {
	return [...]string{"sobre", "paquete", "ambos"}[k]
}

func (k ShipmentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ShipmentKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch strings.ToLower(str) {
	case "sobre":
		*k = ShipmentKindEnvelope
	case "paquete":
		*k = ShipmentKindPackage
	case "ambos":
		*k = ShipmentKindBoth
	}
	return nil
}

// DeriveShipmentKind maps the two form checkboxes to a tipo_envio. The
// second return value is false when neither kind is selected.
func DeriveShipmentKind(envelope, pkg bool) (ShipmentKind, bool) {
	switch {
	case envelope && pkg:
		return ShipmentKindBoth, true
	case envelope:
		return ShipmentKindEnvelope, true
	case pkg:
		return ShipmentKindPackage, true
	default:
		return ShipmentKindEnvelope, false
	}
}
