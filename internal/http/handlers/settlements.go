package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"barbershop/internal/http/middleware"
	"barbershop/internal/services"

	"github.com/gin-gonic/gin"
)

type SettlementHandler struct {
	Settlements services.SettlementService
	Docs        services.DocsService
}

func (h SettlementHandler) params(c *gin.Context) (int64, string, string, bool) {
	barberID, err := strconv.ParseInt(c.Query("barber_id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "barber_id inválido", err)
		return 0, "", "", false
	}
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	return barberID, from, to, true
}

// GET /api/settlements?barber_id=3&from=2026-08-01&to=2026-08-31
func (h SettlementHandler) Get(c *gin.Context) {
	barberID, from, to, ok := h.params(c)
	if !ok {
		return
	}
	stl, err := h.Settlements.Build(barberID, from, to)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlement": stl})
}

// GET /api/settlements/pdf?barber_id=3&from=...&to=...
func (h SettlementHandler) GetPDF(c *gin.Context) {
	barberID, from, to, ok := h.params(c)
	if !ok {
		return
	}
	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := docs.GenerateSettlementPDF(barberID, from, to)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
