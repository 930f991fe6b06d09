package entity

import (
	"encoding/json"
	"math"
	"strconv"
)

// RefID normalizes the duck-typed foreign-key fields the backend returns.
// Depending on the serializer in use, a related field arrives as a bare
// numeric id, a numeric string, or a nested object carrying its own primary
// key. All of them decode into one plain id so no caller ever branches on
// shape.
type RefID int64

// Keys probed, in order, when a related field arrives as a nested object.
var refIDKeys = []string{
	"id",
	"id_cliente",
	"id_viaje",
	"id_parada",
	"id_encomienda",
	"id_reserva",
	"id_empleado",
	"id_bus",
	"pk",
}

// Nested objects probed when no id key is present at the top level. A
// shipment's origen/destino arrive as route-detail objects wrapping a parada.
var refIDNested = []string{"parada", "cliente", "viaje"}

func (r *RefID) UnmarshalJSON(data []byte) error {
	*r = 0
	if string(data) == "null" {
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*r = RefID(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil
		}
		*r = RefID(parsed)
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for _, key := range refIDKeys {
		if raw, ok := obj[key]; ok {
			var id RefID
			if err := id.UnmarshalJSON(raw); err == nil && id != 0 {
				*r = id
				return nil
			}
		}
	}
	for _, key := range refIDNested {
		if raw, ok := obj[key]; ok {
			var id RefID
			if err := id.UnmarshalJSON(raw); err == nil && id != 0 {
				*r = id
				return nil
			}
		}
	}
	return nil
}

func (r RefID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(r))
}

func (r RefID) Int64() int64 {
	return int64(r)
}

// Amount is a monetary value in guaraníes. The backend mixes integer fields
// with decimal fields that serialize as strings ("25000.00"), so decoding
// accepts both and rounds to a whole amount.
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0
	if string(data) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(math.Round(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*a = Amount(math.Round(f))
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(a))
}

func (a Amount) Int64() int64 {
	return int64(a)
}
