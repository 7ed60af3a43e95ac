package handlers

import (
	"net/http"
	"strconv"

	"barbershop/internal/domain/models"
	"barbershop/internal/repositories"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	Repo repositories.ServiceRepository
}

// GET /api/services?active=true
func (h ServiceHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	services, err := h.Repo.List(activeOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// POST /api/services
func (h ServiceHandler) Create(c *gin.Context) {
	var svc models.Service
	if !BindJSONOrError(c, &svc) {
		return
	}
	id, err := h.Repo.Create(svc)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc.ID = id
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// PUT /api/services/:id
func (h ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id inválido", err)
		return
	}
	var svc models.Service
	if !BindJSONOrError(c, &svc) {
		return
	}
	svc.ID = id
	if err := h.Repo.Update(svc); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DELETE /api/services/:id
func (h ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id inválido", err)
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "servicio desactivado"})
}
