package handlers

import (
	"net/http"

	"barbershop/internal/http/middleware"
	"barbershop/internal/services"

	"github.com/gin-gonic/gin"
)

type WalkInHandler struct {
	WalkIns services.WalkInService
}

// POST /api/walkins
func (h WalkInHandler) Register(c *gin.Context) {
	var req services.WalkInRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := h.WalkIns
	svc.Booking.RequestID = middleware.GetRequestID(c)

	result, err := svc.Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
