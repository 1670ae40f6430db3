package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/toymix/internal/domain/model"
	"github.com/polkiloo/toymix/internal/server/http/dto"
)

var saleMessages = messages{
	notFound: "Venda ou cliente não encontrado",
	conflict: "Venda já cadastrada",
}

// SaleHandler serves /sales.
type SaleHandler struct {
	facade SaleFacade
}

func NewSaleHandler(facade SaleFacade) *SaleHandler {
	return &SaleHandler{facade: facade}
}

// List handles GET /sales?cliente_id&dataInicial&dataFinal&pagina&porPagina.
func (h *SaleHandler) List(c *gin.Context) {
	customerID, ok := queryID(c, "cliente_id")
	if !ok {
		badRequest(c, "cliente_id inválido")
		return
	}

	page, err := h.facade.Sales(c.Request.Context(), model.SaleQuery{
		CustomerID: customerID,
		From:       c.Query("dataInicial"),
		To:         c.Query("dataFinal"),
		Page:       queryInt(c, "pagina"),
		PerPage:    queryInt(c, "porPagina"),
	})
	if err != nil {
		respondError(c, err, saleMessages)
		return
	}

	c.JSON(http.StatusOK, dto.NewSaleListResponse(*page))
}

// Create handles POST /sales.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		badRequest(c, "Cliente, data e valor são obrigatórios")
		return
	}

	sale, err := h.facade.CreateSale(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err, messages{notFound: "Cliente não encontrado"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewSaleResponse(*sale))
}

// Update handles PUT /sales/:id.
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: "Venda não encontrada"})
		return
	}

	var req dto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	sale, err := h.facade.UpdateSale(c.Request.Context(), id, req.Changes())
	if err != nil {
		respondError(c, err, saleMessages)
		return
	}
	c.JSON(http.StatusOK, dto.NewSaleResponse(*sale))
}

// Delete handles DELETE /sales/:id.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: "Venda não encontrada"})
		return
	}

	if err := h.facade.DeleteSale(c.Request.Context(), id); err != nil {
		respondError(c, err, messages{notFound: "Venda não encontrada"})
		return
	}
	c.Status(http.StatusNoContent)
}
