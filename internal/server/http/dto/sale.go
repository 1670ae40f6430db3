package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/toymix/internal/domain/model"
)

// CreateSaleRequest is the POST /sales payload. Valor accepts a JSON number or string.
type CreateSaleRequest struct {
	CustomerID int64            `json:"cliente_id" binding:"required"`
	Date       string           `json:"data" binding:"required"`
	Amount     *decimal.Decimal `json:"valor" binding:"required"`
}

func (r CreateSaleRequest) Input() model.SaleInput {
	return model.SaleInput{CustomerID: r.CustomerID, Date: r.Date, Amount: r.Amount}
}

// UpdateSaleRequest is the PUT /sales/:id payload.
type UpdateSaleRequest struct {
	CustomerID *int64           `json:"cliente_id"`
	Date       *string          `json:"data"`
	Amount     *decimal.Decimal `json:"valor"`
}

func (r UpdateSaleRequest) Changes() model.SaleChanges {
	return model.SaleChanges{CustomerID: r.CustomerID, Date: r.Date, Amount: r.Amount}
}

// SaleResponse renders money as a fixed two-decimal string.
type SaleResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"cliente_id"`
	Date         string    `json:"data"`
	Amount       string    `json:"valor"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CustomerName string    `json:"cliente_nome,omitempty"`
}

func NewSaleResponse(s model.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		CustomerID:   s.CustomerID,
		Date:         s.Date.Format(DateLayout),
		Amount:       s.Amount.StringFixed(2),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		CustomerName: s.CustomerName,
	}
}

// SaleListResponse is the GET /sales body.
type SaleListResponse struct {
	Sales []SaleResponse `json:"vendas"`
	Meta  SaleListMeta   `json:"meta"`
}

type SaleListMeta struct {
	Total       int64   `json:"total"`
	TotalAmount float64 `json:"totalValor"`
	Page        int     `json:"pagina"`
	PerPage     int     `json:"porPagina"`
}

func NewSaleListResponse(page model.SalePage) SaleListResponse {
	sales := make([]SaleResponse, 0, len(page.Items))
	for _, s := range page.Items {
		sales = append(sales, NewSaleResponse(s))
	}
	return SaleListResponse{
		Sales: sales,
		Meta: SaleListMeta{
			Total:       page.Total,
			TotalAmount: page.TotalAmount.Round(2).InexactFloat64(),
			Page:        page.Page.Number,
			PerPage:     page.Page.Size,
		},
	}
}
