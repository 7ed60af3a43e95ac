package services

import (
	"testing"

	"barbershop/internal/domain/models"
)

func TestDocsServiceGenerateSettlement(t *testing.T) {
	loader := func(barberID int64, from, to string) (models.Settlement, error) {
		return models.Settlement{
			BarberID:       barberID,
			BarberName:     "Mario",
			From:           from,
			To:             to,
			CommissionRate: 0.4,
			Gross:          25000,
			Commission:     10000,
			Payout:         15000,
			Lines: []models.SettlementLine{
				{AppointmentID: 11, Date: "2026-08-05", StartTime: "10:00", ClientName: "Pedro", Total: 10000},
				{AppointmentID: 12, Date: "2026-08-20", StartTime: "16:30", ClientName: "Juan", Total: 15000},
			},
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateSettlementPDF(3, "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("GenerateSettlementPDF returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateSettlementPDF returned empty data")
	}
	if filename != "LIQUIDACION_3_2026-08-01_2026-08-31.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}
