package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyTotal is the sum of sales for one calendar day.
type DailyTotal struct {
	Date  time.Time
	Total decimal.Decimal
}

// ClientRanking is the best customer for one aggregate metric.
// Only the field matching the metric is populated.
type ClientRanking struct {
	CustomerID  int64
	Name        string
	Email       string
	TotalAmount decimal.Decimal
	AvgAmount   decimal.Decimal
	UniqueDays  int64
}

// TopClients groups the single best customer by volume, average ticket and frequency.
type TopClients struct {
	ByVolume    *ClientRanking
	ByAverage   *ClientRanking
	ByFrequency *ClientRanking
}

// Summary aggregates all sales.
type Summary struct {
	TotalAmount   decimal.Decimal
	SaleCount     int64
	CustomerCount int64
	AverageTicket decimal.Decimal
}
