package enum

import (
	"encoding/json"
	"testing"
)

func TestDeriveShipmentKind(t *testing.T) {
	tests := []struct {
		name     string
		envelope bool
		pkg      bool
		want     ShipmentKind
		ok       bool
	}{
		{"envelope only", true, false, ShipmentKindEnvelope, true},
		{"package only", false, true, ShipmentKindPackage, true},
		{"both", true, true, ShipmentKindBoth, true},
		{"neither", false, false, ShipmentKindEnvelope, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveShipmentKind(tt.envelope, tt.pkg)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShipmentKindWire(t *testing.T) {
	data, err := json.Marshal(ShipmentKindBoth)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"ambos"` {
		t.Errorf("marshal: got %s", data)
	}

	var k ShipmentKind
	if err := json.Unmarshal([]byte(`"paquete"`), &k); err != nil {
		t.Fatal(err)
	}
	if k != ShipmentKindPackage {
		t.Errorf("unmarshal: got %v", k)
	}
}

func TestMovementKindLegacyApertura(t *testing.T) {
	var k MovementKind
	if err := json.Unmarshal([]byte(`"Apertura"`), &k); err != nil {
		t.Fatal(err)
	}
	if k != MovementKindIncome {
		t.Errorf("legacy Apertura should decode as income, got %v", k)
	}
}

func TestRegisterStateWire(t *testing.T) {
	data, err := json.Marshal(RegisterStateClosed)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Cerrada"` {
		t.Errorf("marshal: got %s", data)
	}

	var s RegisterState
	if err := json.Unmarshal([]byte(`"Abierta"`), &s); err != nil {
		t.Fatal(err)
	}
	if s != RegisterStateOpen {
		t.Errorf("unmarshal: got %v", s)
	}
}
