package services

import (
	"math"
	"strings"

	"barbershop/internal/domain"
	"barbershop/internal/domain/models"
	"barbershop/internal/repositories"
)

// SettlementService computes per-barber liquidaciones: gross over completed
// visits in a range, shop commission, and the barber payout.
type SettlementService struct {
	BarberRepo      repositories.BarberRepository
	AppointmentRepo repositories.AppointmentRepository
}

func (s SettlementService) Build(barberID int64, from, to string) (models.Settlement, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return models.Settlement{}, domain.ValidationError{Field: "range", Msg: "from y to son requeridos"}
	}
	if to < from {
		return models.Settlement{}, domain.ValidationError{Field: "range", Msg: "rango de fechas invertido"}
	}

	barber, err := s.BarberRepo.GetByID(barberID)
	if err != nil {
		return models.Settlement{}, err
	}

	lines, err := s.AppointmentRepo.CompletedLines(barberID, from, to)
	if err != nil {
		return models.Settlement{}, err
	}

	var gross int64
	for _, l := range lines {
		gross += l.Total
	}
	commission := roundMoney(float64(gross) * barber.CommissionRate)

	return models.Settlement{
		BarberID:       barber.ID,
		BarberName:     barber.Name,
		From:           from,
		To:             to,
		CommissionRate: barber.CommissionRate,
		Gross:          gross,
		Commission:     commission,
		Payout:         gross - commission,
		Lines:          lines,
	}, nil
}

func roundMoney(x float64) int64 {
	return int64(math.Round(x))
}
