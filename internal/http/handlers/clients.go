package handlers

import (
	"net/http"

	"barbershop/internal/services"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	Clients services.ClientService
}

// GET /api/clients
func (h ClientHandler) List(c *gin.Context) {
	clients, err := h.Clients.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}
