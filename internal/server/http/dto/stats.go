package dto

import "github.com/polkiloo/toymix/internal/domain/model"

// DailySalesResponse is one day of GET /stats/daily-sales.
type DailySalesResponse struct {
	Date  string  `json:"data"`
	Total float64 `json:"total"`
}

func NewDailySalesResponse(totals []model.DailyTotal) []DailySalesResponse {
	resp := make([]DailySalesResponse, 0, len(totals))
	for _, d := range totals {
		resp = append(resp, DailySalesResponse{Date: d.Date.Format(DateLayout), Total: d.Total.Round(2).InexactFloat64()})
	}
	return resp
}

// RankedClient carries the metric that ranked the customer; the other metrics are omitted.
type RankedClient struct {
	ID          int64    `json:"id"`
	Name        string   `json:"nome"`
	Email       string   `json:"email"`
	TotalAmount *float64 `json:"total_vendas,omitempty"`
	AvgAmount   *float64 `json:"media_valor,omitempty"`
	UniqueDays  *int64   `json:"dias_unicos,omitempty"`
}

// TopClientsResponse holds one entry per category, null when there are no sales.
type TopClientsResponse struct {
	ByVolume    *RankedClient `json:"maior_volume"`
	ByAverage   *RankedClient `json:"maior_media"`
	ByFrequency *RankedClient `json:"maior_frequencia"`
}

func NewTopClientsResponse(top model.TopClients) TopClientsResponse {
	var resp TopClientsResponse
	if r := top.ByVolume; r != nil {
		v := r.TotalAmount.Round(2).InexactFloat64()
		resp.ByVolume = &RankedClient{ID: r.CustomerID, Name: r.Name, Email: r.Email, TotalAmount: &v}
	}
	if r := top.ByAverage; r != nil {
		v := r.AvgAmount.Round(2).InexactFloat64()
		resp.ByAverage = &RankedClient{ID: r.CustomerID, Name: r.Name, Email: r.Email, AvgAmount: &v}
	}
	if r := top.ByFrequency; r != nil {
		days := r.UniqueDays
		resp.ByFrequency = &RankedClient{ID: r.CustomerID, Name: r.Name, Email: r.Email, UniqueDays: &days}
	}
	return resp
}

// SummaryResponse is the GET /stats/summary body.
type SummaryResponse struct {
	TotalAmount   float64 `json:"totalVendas"`
	SaleCount     int64   `json:"qtdVendas"`
	CustomerCount int64   `json:"totalClientes"`
	AverageTicket float64 `json:"ticketMedio"`
}

func NewSummaryResponse(s model.Summary) SummaryResponse {
	return SummaryResponse{
		TotalAmount:   s.TotalAmount.Round(2).InexactFloat64(),
		SaleCount:     s.SaleCount,
		CustomerCount: s.CustomerCount,
		AverageTicket: s.AverageTicket.Round(2).InexactFloat64(),
	}
}
