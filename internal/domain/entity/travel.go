package entity

import "encoding/json"

// Bus arrives nested inside a trip or as a bare id, depending on the
// serializer depth in use.
type Bus struct {
	ID     RefID  `json:"id_bus"`
	Placa  string `json:"placa"`
	Marca  string `json:"marca,omitempty"`
	Modelo string `json:"modelo,omitempty"`
}

func (b *Bus) UnmarshalJSON(data []byte) error {
	var id RefID
	if err := json.Unmarshal(data, &id); err == nil && string(data) != "" && data[0] != '{' {
		*b = Bus{ID: id}
		return nil
	}
	type alias Bus
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*b = Bus(a)
	return nil
}

// Trip mirrors a viaje record.
type Trip struct {
	ID            int64  `json:"id_viaje"`
	Horario       RefID  `json:"horario"`
	Bus           Bus    `json:"bus"`
	Date          string `json:"fecha"`
	Active        bool   `json:"activo"`
	Observaciones string `json:"observaciones,omitempty"`
}

// Label renders a trip the way the shipment table shows it.
func (t *Trip) Label() string {
	placa := t.Bus.Placa
	if placa == "" {
		placa = "N/A"
	}
	return "Bus " + placa + " - " + t.Date
}

// Stop mirrors a parada record.
type Stop struct {
	ID        int64  `json:"id_parada"`
	Localidad RefID  `json:"localidad"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	Active    bool   `json:"activo"`
}
