package dto

import (
	"time"

	"github.com/polkiloo/toymix/internal/domain/model"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// CreateCustomerRequest is the POST /clientes payload.
type CreateCustomerRequest struct {
	Name      string `json:"nome" binding:"required"`
	Email     string `json:"email" binding:"required"`
	BirthDate string `json:"nascimento" binding:"required"`
}

// Input converts request into use-case input.
func (r CreateCustomerRequest) Input() model.CustomerInput {
	return model.CustomerInput{Name: r.Name, Email: r.Email, BirthDate: r.BirthDate}
}

// UpdateCustomerRequest is the PUT /clientes/:id payload. Absent fields stay nil.
type UpdateCustomerRequest struct {
	Name      *string `json:"nome"`
	Email     *string `json:"email"`
	BirthDate *string `json:"nascimento"`
}

// Changes converts request into use-case changes.
func (r UpdateCustomerRequest) Changes() model.CustomerChanges {
	return model.CustomerChanges{Name: r.Name, Email: r.Email, BirthDate: r.BirthDate}
}

// CustomerResponse is the flat customer entity.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	BirthDate string    `json:"nascimento"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomerResponse maps a customer entity.
func NewCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		BirthDate: c.BirthDate.Format(DateLayout),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CustomerListResponse keeps the nested listing shape consumed by the dashboard.
type CustomerListResponse struct {
	Data      CustomerListData `json:"data"`
	Meta      CustomerListMeta `json:"meta"`
	Redundant RedundantBlock   `json:"redundante"`
}

type CustomerListData struct {
	Customers []CustomerListItem `json:"clientes"`
}

type CustomerListItem struct {
	ID    int64         `json:"id"`
	Info  CustomerInfo  `json:"info"`
	Stats CustomerStats `json:"estatisticas"`
}

type CustomerInfo struct {
	FullName string          `json:"nomeCompleto"`
	Details  CustomerDetails `json:"detalhes"`
}

type CustomerDetails struct {
	Email     string `json:"email"`
	BirthDate string `json:"nascimento"`
}

// CustomerStats is always emitted with an empty sales list.
type CustomerStats struct {
	Sales []SaleResponse `json:"vendas"`
}

type CustomerListMeta struct {
	Total int64 `json:"registroTotal"`
	Page  int   `json:"pagina"`
}

type RedundantBlock struct {
	Status string `json:"status"`
}

// NewCustomerListResponse maps a customer page.
func NewCustomerListResponse(page model.CustomerPage) CustomerListResponse {
	items := make([]CustomerListItem, 0, len(page.Items))
	for _, c := range page.Items {
		items = append(items, CustomerListItem{
			ID: c.ID,
			Info: CustomerInfo{
				FullName: c.Name,
				Details: CustomerDetails{
					Email:     c.Email,
					BirthDate: c.BirthDate.Format(DateLayout),
				},
			},
			Stats: CustomerStats{Sales: []SaleResponse{}},
		})
	}
	return CustomerListResponse{
		Data:      CustomerListData{Customers: items},
		Meta:      CustomerListMeta{Total: page.Total, Page: page.Page.Number},
		Redundant: RedundantBlock{Status: "ok"},
	}
}
