// Package voucher renders the printable encomienda receipt.
package voucher

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// ClientSection is the client block of the voucher.
type ClientSection struct {
	Name string `json:"nombre"`
	RUC  string `json:"ruc"`
}

// TripSection is the trip block of the voucher.
type TripSection struct {
	Date        string `json:"fecha"`
	BusPlate    string `json:"placa"`
	Origin      string `json:"origen"`
	Destination string `json:"destino"`
}

// ShipmentSection is the shipment block of the voucher.
type ShipmentSection struct {
	ID            int64  `json:"id_encomienda"`
	Kind          string `json:"tipo_envio"`
	Sender        string `json:"remitente"`
	TaxID         string `json:"ruc_ci"`
	Contact       string `json:"numero_contacto"`
	EnvelopeCount int    `json:"cantidad_sobre"`
	PackageCount  int    `json:"cantidad_paquete"`
	Description   string `json:"descripcion"`
}

// Voucher is the assembled document data, also served as the preview
// payload before the PDF is requested.
type Voucher struct {
	Client   ClientSection   `json:"cliente"`
	Trip     TripSection     `json:"viaje"`
	Shipment ShipmentSection `json:"encomienda"`
	Total    int64           `json:"total"`
}

const (
	marginX   = 15.0
	lineHigh  = 7.0
	labelWide = 50.0
)

// Render produces the A4 voucher document.
func Render(v *Voucher) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, 15, marginX)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("COMPROBANTE DE ENCOMIENDA"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Comprobante N° "+strconv.FormatInt(v.Shipment.ID, 10)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 8, tr(title), "1", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		pdf.CellFormat(labelWide, lineHigh, tr(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHigh, tr(value), "1", 1, "L", false, 0, "")
	}

	section("DATOS DEL CLIENTE")
	row("Nombre", v.Client.Name)
	row("RUC", v.Client.RUC)
	pdf.Ln(4)

	section("DATOS DEL VIAJE")
	row("Fecha", v.Trip.Date)
	row("Bus", v.Trip.BusPlate)
	row("Origen", v.Trip.Origin)
	row("Destino", v.Trip.Destination)
	pdf.Ln(4)

	section("DATOS DE LA ENCOMIENDA")
	row("Tipo de envío", v.Shipment.Kind)
	row("Remitente", v.Shipment.Sender)
	row("RUC/CI", v.Shipment.TaxID)
	row("Contacto", v.Shipment.Contact)
	row("Cantidad de sobres", strconv.Itoa(v.Shipment.EnvelopeCount))
	row("Cantidad de paquetes", strconv.Itoa(v.Shipment.PackageCount))
	if v.Shipment.Description != "" {
		row("Descripción", v.Shipment.Description)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(labelWide, 9, tr("TOTAL A PAGAR"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 9, tr(formatGuaranies(v.Total)), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render voucher: %w", err)
	}
	return buf.Bytes(), nil
}

// formatGuaranies writes an amount with dot thousand separators, e.g.
// "Gs. 1.250.000".
func formatGuaranies(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return "Gs. " + sign + string(out)
}
