package models

import "github.com/shopspring/decimal"

// ChartSeries is the bar chart data of one customer. Dates and Amounts are
// parallel and follow the source order of the customer's transactions.
type ChartSeries struct {
	CustomerID ID                `json:"customer_id"`
	Label      string            `json:"label"`
	Dates      []string          `json:"dates"`
	Amounts    []decimal.Decimal `json:"amounts"`
}

// IsEmpty reports whether there is nothing to plot
func (s ChartSeries) IsEmpty() bool {
	return len(s.Dates) == 0 || len(s.Amounts) == 0
}

// Len returns the number of bars
func (s ChartSeries) Len() int {
	return len(s.Amounts)
}
