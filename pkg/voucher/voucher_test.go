package voucher

import (
	"bytes"
	"testing"
)

func sample() *Voucher {
	return &Voucher{
		Client: ClientSection{Name: "Juan Perez", RUC: "4555111-8"},
		Trip: TripSection{
			Date:        "2026-08-29",
			BusPlate:    "ABC123",
			Origin:      "Asunción",
			Destination: "Encarnación",
		},
		Shipment: ShipmentSection{
			ID:            17,
			Kind:          "ambos",
			Sender:        "Juan Perez",
			TaxID:         "4555111-8",
			Contact:       "0981123456",
			EnvelopeCount: 3,
			PackageCount:  2,
			Description:   "Documentos y repuestos",
		},
		Total: 80_000,
	}
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := Render(sample())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF, starts with %q", data[:8])
	}
	if len(data) < 1000 {
		t.Errorf("suspiciously small document: %d bytes", len(data))
	}
}

func TestRenderWithoutDescription(t *testing.T) {
	v := sample()
	v.Shipment.Description = ""
	if _, err := Render(v); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestFormatGuaranies(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Gs. 0"},
		{500, "Gs. 500"},
		{80_000, "Gs. 80.000"},
		{1_250_000, "Gs. 1.250.000"},
		{-5_000, "Gs. -5.000"},
	}
	for _, tt := range tests {
		if got := formatGuaranies(tt.amount); got != tt.want {
			t.Errorf("formatGuaranies(%d): got %q, want %q", tt.amount, got, tt.want)
		}
	}
}
