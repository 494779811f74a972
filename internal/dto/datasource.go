package dto

import (
	"customer-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// ---------- Data source records ----------
//
// Records mirror the JSON served by the data source. Pointer fields let the
// validator tell a missing field from a zero value.

type CustomerRecord struct {
	ID   models.ID `json:"id" validate:"record_id"`
	Name *string   `json:"name" validate:"required"`
}

// ToModel converts a validated record
func (r CustomerRecord) ToModel() models.Customer {
	return models.Customer{ID: r.ID, Name: *r.Name}
}

type TransactionRecord struct {
	ID         models.ID        `json:"id" validate:"record_id"`
	CustomerID models.ID        `json:"customer_id" validate:"record_id"`
	Date       *string          `json:"date" validate:"required"`
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
}

// ToModel converts a validated record
func (r TransactionRecord) ToModel() models.Transaction {
	return models.Transaction{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Date:       *r.Date,
		Amount:     *r.Amount,
	}
}
