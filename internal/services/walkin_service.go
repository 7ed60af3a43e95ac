package services

import (
	"context"
	"fmt"

	"barbershop/internal/domain"
	"barbershop/internal/scheduling"
	"barbershop/internal/utils"
)

// WalkInService registers a client on arrival and books the next free slot
// of the day, already confirmed.
type WalkInService struct {
	Booking  BookingService
	Provider scheduling.SlotProvider
	Timezone string
	Clock    func() string // wall clock override for tests
}

type WalkInRequest struct {
	BarberID    int64   `json:"barber_id"`
	ServiceIDs  []int64 `json:"service_ids"`
	ClientName  string  `json:"client_name"`
	ClientPhone string  `json:"client_phone"`
	Notes       string  `json:"notes"`
}

func (s WalkInService) Register(ctx context.Context, req WalkInRequest) (BookingResult, error) {
	today := utils.RegionalToday(s.Timezone)
	now := utils.RegionalTime(s.Timezone)
	if s.Clock != nil {
		now = s.Clock()
	}

	booking := BookingRequest{
		BarberID:    req.BarberID,
		Date:        today,
		ServiceIDs:  req.ServiceIDs,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Notes:       req.Notes,
	}
	appt, quote, err := s.Booking.prepare(ctx, booking, true)
	if err != nil {
		return BookingResult{}, err
	}

	slots, err := s.Provider.Slots(ctx, req.BarberID, today, quote.Duration)
	if err != nil {
		utils.LogEvent(s.Booking.RequestID, "walkin", "provider_fallback",
			fmt.Sprintf("barber_id=%d err=%v", req.BarberID, err))
		slots = scheduling.DefaultGrid()
	}

	start := ""
	for _, slot := range slots {
		if slot.Available && slot.Time >= now {
			start = slot.Time
			break
		}
	}
	if start == "" {
		return BookingResult{}, domain.ConflictError{Resource: "cita", Msg: "no quedan horarios disponibles hoy"}
	}

	appt.StartTime = start
	return s.Booking.submit(ctx, appt, quote)
}
