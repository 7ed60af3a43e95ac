package services

import (
	"context"
	"fmt"
	"strings"

	"barbershop/internal/domain"
	"barbershop/internal/domain/models"
	"barbershop/internal/repositories"
	"barbershop/internal/scheduling"
	"barbershop/internal/utils"

	"github.com/google/uuid"
)

type BookingService struct {
	AppointmentRepo repositories.AppointmentRepository
	ServiceRepo     repositories.ServiceRepository
	BarberRepo      repositories.BarberRepository
	Timezone        string
	RequestID       string
}

type BookingRequest struct {
	BarberID    int64   `json:"barber_id"`
	Date        string  `json:"date"`       // YYYY-MM-DD
	StartTime   string  `json:"start_time"` // HH:MM
	ServiceIDs  []int64 `json:"service_ids"`
	ClientName  string  `json:"client_name"`
	ClientPhone string  `json:"client_phone"`
	ClientEmail string  `json:"client_email"`
	Notes       string  `json:"notes"`
}

type BookingResult struct {
	Appointment models.Appointment `json:"appointment"`
	EndTime     string             `json:"end_time"` // chair time only, buffer excluded
}

// Create validates and submits a booking as pendiente. The overlap check
// lives in the repository transaction; a collision surfaces here as a
// ConflictError for the client to pick another time.
func (s BookingService) Create(ctx context.Context, req BookingRequest) (BookingResult, error) {
	appt, quote, err := s.prepare(ctx, req, false)
	if err != nil {
		return BookingResult{}, err
	}
	return s.submit(ctx, appt, quote)
}

func (s BookingService) prepare(ctx context.Context, req BookingRequest, walkIn bool) (models.Appointment, scheduling.Quote, error) {
	var appt models.Appointment

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return appt, scheduling.Quote{}, domain.ValidationError{Field: "client_name", Msg: "nombre requerido"}
	}
	phone, err := utils.NormalizePhone(req.ClientPhone)
	if err != nil {
		return appt, scheduling.Quote{}, domain.ValidationError{Field: "client_phone", Msg: "teléfono móvil inválido"}
	}
	if len(req.ServiceIDs) == 0 {
		return appt, scheduling.Quote{}, domain.ValidationError{Field: "service_ids", Msg: "debe seleccionar al menos un servicio"}
	}
	if !walkIn {
		// Walk-ins get their start assigned from the next free slot.
		if _, err := utils.ParseClock(req.StartTime); err != nil {
			return appt, scheduling.Quote{}, domain.ValidationError{Field: "start_time", Msg: "formato esperado HH:MM"}
		}
	}
	if _, err := utils.ParseDate(req.Date, s.Timezone); err != nil {
		return appt, scheduling.Quote{}, domain.ValidationError{Field: "date", Msg: "formato esperado YYYY-MM-DD"}
	}
	today := utils.RegionalToday(s.Timezone)
	if req.Date < today {
		return appt, scheduling.Quote{}, domain.ValidationError{Field: "date", Msg: "la fecha ya pasó"}
	}
	if req.Date == today && req.StartTime < utils.RegionalTime(s.Timezone) && !walkIn {
		return appt, scheduling.Quote{}, domain.ValidationError{Field: "start_time", Msg: "la hora ya pasó"}
	}

	barber, err := s.BarberRepo.GetByID(req.BarberID)
	if err != nil {
		return appt, scheduling.Quote{}, err
	}
	if !barber.Active {
		return appt, scheduling.Quote{}, domain.ValidationError{Field: "barber_id", Msg: "barbero no disponible"}
	}

	catalog, err := s.ServiceRepo.List(true)
	if err != nil {
		return appt, scheduling.Quote{}, err
	}
	quote := scheduling.BuildQuote(req.ServiceIDs, catalog)
	if countDistinct(req.ServiceIDs) != len(quote.Lines) {
		return appt, scheduling.Quote{}, domain.ValidationError{Field: "service_ids", Msg: "servicios no encontrados"}
	}

	status := models.StatusPending
	if walkIn {
		status = models.StatusConfirmed
	}
	appt = models.Appointment{
		Code:        strings.ToUpper(uuid.NewString()[:8]),
		BarberID:    barber.ID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		Duration:    quote.Duration,
		TotalPrice:  quote.Price,
		ClientName:  name,
		ClientPhone: phone,
		ClientEmail: strings.TrimSpace(req.ClientEmail),
		Notes:       strings.TrimSpace(req.Notes),
		Status:      status,
		WalkIn:      walkIn,
	}
	return appt, quote, nil
}

func (s BookingService) submit(ctx context.Context, appt models.Appointment, quote scheduling.Quote) (BookingResult, error) {
	lines := make([]models.AppointmentService, 0, len(quote.Lines))
	for _, l := range quote.Lines {
		lines = append(lines, models.AppointmentService{
			ServiceID: l.Service.ID,
			Quantity:  l.Quantity,
			UnitPrice: l.Service.Price,
		})
	}

	id, err := s.AppointmentRepo.Create(ctx, appt, lines)
	if err != nil {
		return BookingResult{}, err
	}
	appt.ID = id

	end, err := scheduling.ProjectEndTime(appt.StartTime, quote.ServiceDuration())
	if err != nil {
		return BookingResult{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "created",
		fmt.Sprintf("appointment_id=%d barber_id=%d date=%s start=%s", id, appt.BarberID, appt.Date, appt.StartTime))
	return BookingResult{Appointment: appt, EndTime: end}, nil
}

// Confirm moves a pending appointment to confirmada.
func (s BookingService) Confirm(id int64) error {
	status, err := s.AppointmentRepo.GetStatus(id)
	if err != nil {
		return err
	}
	if status != models.StatusPending {
		return domain.ValidationError{Field: "status", Msg: "solo se pueden confirmar citas pendientes"}
	}
	return s.AppointmentRepo.SetStatus(id, models.StatusConfirmed, "")
}

// Cancel requires a reason and is allowed from pendiente or confirmada.
func (s BookingService) Cancel(id int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ValidationError{Field: "reason", Msg: "motivo requerido"}
	}
	status, err := s.AppointmentRepo.GetStatus(id)
	if err != nil {
		return err
	}
	if status != models.StatusPending && status != models.StatusConfirmed {
		return domain.ValidationError{Field: "status", Msg: "la cita no se puede cancelar"}
	}
	return s.AppointmentRepo.SetStatus(id, models.StatusCancelled, strings.TrimSpace(reason))
}

// Complete marks a visit done, feeding settlements and client history.
func (s BookingService) Complete(id int64) error {
	status, err := s.AppointmentRepo.GetStatus(id)
	if err != nil {
		return err
	}
	if status != models.StatusPending && status != models.StatusConfirmed {
		return domain.ValidationError{Field: "status", Msg: "la cita no se puede completar"}
	}
	return s.AppointmentRepo.SetStatus(id, models.StatusCompleted, "")
}

func countDistinct(ids []int64) int {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
