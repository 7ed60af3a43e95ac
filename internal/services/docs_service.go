package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"barbershop/internal/domain/models"
	"barbershop/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders settlement PDFs for payouts.
type DocsService struct {
	Settlements SettlementService
	RequestID   string
	Loader      func(barberID int64, from, to string) (models.Settlement, error)
}

func (s DocsService) GenerateSettlementPDF(barberID int64, from, to string) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.Settlements.Build
	}
	stl, err := load(barberID, from, to)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_settlement",
		fmt.Sprintf("barber_id=%d from=%s to=%s", barberID, from, to))
	return buildSettlementPDF(stl)
}

func buildSettlementPDF(stl models.Settlement) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Liquidacion", false)
	pdf.AddPage()
	// core fonts are cp1252; translate so tildes render
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("LIQUIDACIÓN DE BARBERO"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	head := []string{
		fmt.Sprintf("Barbero    : %s", safe(stl.BarberName, "-")),
		fmt.Sprintf("Período    : %s a %s", stl.From, stl.To),
		fmt.Sprintf("Comisión   : %.1f%%", stl.CommissionRate*100),
		fmt.Sprintf("Emitido    : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, line := range head {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Detalle de citas completadas:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(stl.Lines) == 0 {
		pdf.Cell(0, 6, tr("Sin citas completadas en el período."))
		pdf.Ln(6)
	}
	for i, l := range stl.Lines {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%d) %s %s  %s  %s",
			i+1, l.Date, l.StartTime, safe(l.ClientName, "-"), utils.FormatCLP(l.Total))))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total bruto      : "+utils.FormatCLP(stl.Gross))
	pdf.Ln(8)
	pdf.Cell(0, 8, tr("Comisión local   : "+utils.FormatCLP(stl.Commission)))
	pdf.Ln(8)
	pdf.Cell(0, 8, "A pagar barbero  : "+utils.FormatCLP(stl.Payout))
	pdf.Ln(10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("LIQUIDACION_%d_%s_%s.pdf", stl.BarberID, stl.From, stl.To)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
