package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is a dated amount belonging to exactly one customer through CustomerID
type Transaction struct {
	ID         ID              `json:"id"`
	CustomerID ID              `json:"customer_id"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
}

// BelongsTo reports whether the transaction references the given customer
func (t Transaction) BelongsTo(customerID ID) bool {
	return t.CustomerID == customerID
}

// AmountText returns the decimal string form of the amount, e.g. 100, 50.5
func (t Transaction) AmountText() string {
	return t.Amount.String()
}
