package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"barbershop/internal/domain/models"
	"barbershop/internal/repositories"

	"github.com/gin-gonic/gin"
)

type BarberHandler struct {
	Repo repositories.BarberRepository
}

// GET /api/barbers?active=true
func (h BarberHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	barbers, err := h.Repo.List(activeOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}

// POST /api/barbers
func (h BarberHandler) Create(c *gin.Context) {
	var b models.Barber
	if !BindJSONOrError(c, &b) {
		return
	}
	id, err := h.Repo.Create(b)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	b.ID = id
	c.JSON(http.StatusCreated, gin.H{"barber": b})
}

// PUT /api/barbers/:id
func (h BarberHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var b models.Barber
	if !BindJSONOrError(c, &b) {
		return
	}
	b.ID = id
	if err := h.Repo.Update(b); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"barber": b})
}

// DELETE /api/barbers/:id
func (h BarberHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "barbero desactivado"})
}

// GET /api/barbers/:id/schedule
func (h BarberHandler) GetSchedule(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	hours, err := h.Repo.ListWorkingHours(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"working_hours": hours})
}

// PUT /api/barbers/:id/schedule
func (h BarberHandler) PutSchedule(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var body struct {
		WorkingHours []models.WorkingHours `json:"working_hours"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}
	if err := h.Repo.ReplaceWorkingHours(id, body.WorkingHours); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "horario actualizado"})
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = fmt.Errorf("id fuera de rango: %d", id)
		}
		RespondError(c, http.StatusBadRequest, "id inválido", err)
		return 0, err
	}
	return id, nil
}
