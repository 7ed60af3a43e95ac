package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"barbershop/internal/http/middleware"
	"barbershop/internal/repositories"
	"barbershop/internal/services"
	"barbershop/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Booking services.BookingService
	Repo    repositories.AppointmentRepository
}

func (h BookingHandler) booking(c *gin.Context) services.BookingService {
	svc := h.Booking
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

// POST /api/bookings
func (h BookingHandler) Create(c *gin.Context) {
	var req services.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	result, err := h.booking(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /api/bookings?date=YYYY-MM-DD&barber_id=3
func (h BookingHandler) List(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = utils.RegionalToday(h.Booking.Timezone)
	}
	var barberID int64
	if raw := strings.TrimSpace(c.Query("barber_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "barber_id inválido", err)
			return
		}
		barberID = id
	}
	// Barber panel logins only see their own agenda.
	if middleware.GetUserRole(c) == "barber" {
		barberID = middleware.GetBarberID(c)
	}

	appts, err := h.Repo.ListByDate(date, barberID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "appointments": appts})
}

// GET /api/bookings/client/:phone
func (h BookingHandler) ListByClient(c *gin.Context) {
	phone, err := utils.NormalizePhone(c.Param("phone"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "teléfono inválido", err)
		return
	}
	appts, err := h.Repo.ListByClientPhone(phone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// PUT /api/bookings/:id/confirm
func (h BookingHandler) Confirm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.booking(c).Confirm(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cita confirmada"})
}

// PUT /api/bookings/:id/cancel
func (h BookingHandler) Cancel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}
	if err := h.booking(c).Cancel(id, body.Reason); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cita cancelada"})
}

// PUT /api/bookings/:id/complete
func (h BookingHandler) Complete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.booking(c).Complete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cita completada"})
}
