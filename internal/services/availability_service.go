package services

import (
	"context"
	"strconv"
	"strings"

	"barbershop/internal/domain"
	"barbershop/internal/repositories"
	"barbershop/internal/scheduling"
	"barbershop/internal/utils"
)

const slotStepMinutes = 30

// ScheduleProvider is the SQL-backed scheduling.SlotProvider: it builds the
// slot grid from the barber's weekly working hours and marks every start
// that would collide with an active appointment or overrun the shift.
type ScheduleProvider struct {
	BarberRepo      repositories.BarberRepository
	AppointmentRepo repositories.AppointmentRepository
	Timezone        string
}

func (p ScheduleProvider) Slots(ctx context.Context, barberID int64, date string, durationMinutes int) ([]scheduling.Slot, error) {
	day, err := utils.ParseDate(date, p.Timezone)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "formato esperado YYYY-MM-DD"}
	}

	hours, err := p.BarberRepo.ListWorkingHours(barberID)
	if err != nil {
		return nil, err
	}

	booked, err := p.AppointmentRepo.BookedIntervals(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	type interval struct{ start, end int }
	taken := make([]interval, 0, len(booked))
	for _, b := range booked {
		start, err := clockMinutes(b.StartTime)
		if err != nil {
			continue
		}
		taken = append(taken, interval{start, start + b.Duration})
	}

	weekday := int(day.Weekday())
	slots := []scheduling.Slot{}
	for _, wh := range hours {
		if !wh.Active || wh.Weekday != weekday {
			continue
		}
		blockStart, err1 := clockMinutes(wh.Start)
		blockEnd, err2 := clockMinutes(wh.End)
		if err1 != nil || err2 != nil || blockEnd <= blockStart {
			continue
		}
		for m := blockStart; m < blockEnd; m += slotStepMinutes {
			slot := scheduling.Slot{Time: clockString(m), Available: true}
			if m+durationMinutes > blockEnd {
				slot.Available = false
				slot.Reason = "fuera de horario"
			} else {
				for _, t := range taken {
					if m < t.end && m+durationMinutes > t.start {
						slot.Available = false
						slot.Reason = "ocupado"
						break
					}
				}
			}
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func clockMinutes(clock string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, domain.ValidationError{Field: "time", Msg: "formato esperado HH:MM"}
	}
	h, err1 := strconv.Atoi(parts[0])
	mm, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, domain.ValidationError{Field: "time", Msg: "formato esperado HH:MM"}
	}
	return h*60 + mm, nil
}

func clockString(m int) string {
	h := m / 60
	mm := m % 60
	return pad2(h) + ":" + pad2(mm)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// AvailabilityService answers slot searches for a selection of services,
// with the partial-fit fallback and generation guarding from the
// scheduling package.
type AvailabilityService struct {
	ServiceRepo repositories.ServiceRepository
	Searcher    *scheduling.Searcher
	Timezone    string
}

// AvailabilityResult is the HTTP-facing view of a search.
type AvailabilityResult struct {
	scheduling.SearchResult
	Quote scheduling.Quote `json:"quote"`
}

func (s AvailabilityService) Search(ctx context.Context, requestID string, barberID int64, date string, serviceIDs []int64) (AvailabilityResult, error) {
	if barberID <= 0 {
		return AvailabilityResult{}, domain.ValidationError{Field: "barber_id", Msg: "id inválido"}
	}
	if _, err := utils.ParseDate(date, s.Timezone); err != nil {
		return AvailabilityResult{}, domain.ValidationError{Field: "date", Msg: "formato esperado YYYY-MM-DD"}
	}
	if len(serviceIDs) == 0 {
		return AvailabilityResult{}, domain.ValidationError{Field: "service_ids", Msg: "debe seleccionar al menos un servicio"}
	}

	catalog, err := s.ServiceRepo.List(true)
	if err != nil {
		return AvailabilityResult{}, err
	}
	quote := scheduling.BuildQuote(serviceIDs, catalog)
	if len(quote.Lines) == 0 {
		return AvailabilityResult{}, domain.ValidationError{Field: "service_ids", Msg: "servicios no encontrados"}
	}

	// The generation token only guards the shared Latest snapshot. The
	// caller always receives its own computation, even when superseded:
	// substituting another search's result would answer for the wrong
	// barber and date.
	res, _ := s.Searcher.Search(ctx, requestID, barberID, date, quote)
	return AvailabilityResult{SearchResult: res, Quote: quote}, nil
}

// BuildQuote exposes the aggregation on its own (booking submit and walk-in
// reuse it without a slot search).
func (s AvailabilityService) BuildQuote(serviceIDs []int64) (scheduling.Quote, error) {
	catalog, err := s.ServiceRepo.List(true)
	if err != nil {
		return scheduling.Quote{}, err
	}
	return scheduling.BuildQuote(serviceIDs, catalog), nil
}
