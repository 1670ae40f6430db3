package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/toymix/internal/domain/model"
	"github.com/polkiloo/toymix/internal/server/http/dto"
)

var customerMessages = messages{
	notFound: "Cliente não encontrado",
	conflict: "Email já cadastrado",
}

// CustomerHandler serves /clientes.
type CustomerHandler struct {
	facade CustomerFacade
}

func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /clientes?nome&email&id&pagina&porPagina.
func (h *CustomerHandler) List(c *gin.Context) {
	id, ok := queryID(c, "id")
	if !ok {
		badRequest(c, "id inválido")
		return
	}

	page, err := h.facade.Customers(c.Request.Context(), model.CustomerQuery{
		Name:    c.Query("nome"),
		Email:   c.Query("email"),
		ID:      id,
		Page:    queryInt(c, "pagina"),
		PerPage: queryInt(c, "porPagina"),
	})
	if err != nil {
		respondError(c, err, customerMessages)
		return
	}

	c.JSON(http.StatusOK, dto.NewCustomerListResponse(*page))
}

// Get handles GET /clientes/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: customerMessages.notFound})
		return
	}

	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, customerMessages)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponse(*customer))
}

// Create handles POST /clientes.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		badRequest(c, "Nome, email e nascimento são obrigatórios")
		return
	}

	customer, err := h.facade.CreateCustomer(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err, customerMessages)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCustomerResponse(*customer))
}

// Update handles PUT /clientes/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: customerMessages.notFound})
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	customer, err := h.facade.UpdateCustomer(c.Request.Context(), id, req.Changes())
	if err != nil {
		respondError(c, err, customerMessages)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponse(*customer))
}

// Delete handles DELETE /clientes/:id; sales of the customer go with it.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: customerMessages.notFound})
		return
	}

	if err := h.facade.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondError(c, err, customerMessages)
		return
	}
	c.Status(http.StatusNoContent)
}
