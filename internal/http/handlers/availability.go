package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"barbershop/internal/http/middleware"
	"barbershop/internal/services"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	Availability services.AvailabilityService
}

// GET /api/availability?barber_id=3&date=2026-09-01&service_ids=1,1,2
func (h AvailabilityHandler) Search(c *gin.Context) {
	barberID, err := strconv.ParseInt(c.Query("barber_id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "barber_id inválido", err)
		return
	}
	serviceIDs, err := parseIDList(c.Query("service_ids"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "service_ids inválido", err)
		return
	}

	result, err := h.Availability.Search(
		c.Request.Context(),
		middleware.GetRequestID(c),
		barberID,
		strings.TrimSpace(c.Query("date")),
		serviceIDs,
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// parseIDList parses "1,1,2"; repeats carry quantity.
func parseIDList(raw string) ([]int64, error) {
	out := []int64{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
