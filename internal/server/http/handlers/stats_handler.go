package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/toymix/internal/server/http/dto"
)

// StatsHandler serves read-only dashboard reports.
type StatsHandler struct {
	facade StatsFacade
}

func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// DailySales handles GET /stats/daily-sales.
func (h *StatsHandler) DailySales(c *gin.Context) {
	totals, err := h.facade.DailySales(c.Request.Context())
	if err != nil {
		respondError(c, err, messages{})
		return
	}
	c.JSON(http.StatusOK, dto.NewDailySalesResponse(totals))
}

// TopClients handles GET /stats/top-clients.
func (h *StatsHandler) TopClients(c *gin.Context) {
	top, err := h.facade.TopClients(c.Request.Context())
	if err != nil {
		respondError(c, err, messages{})
		return
	}
	c.JSON(http.StatusOK, dto.NewTopClientsResponse(*top))
}

// Summary handles GET /stats/summary.
func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.facade.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err, messages{internal: "Erro ao buscar resumo"})
		return
	}
	c.JSON(http.StatusOK, dto.NewSummaryResponse(*summary))
}
