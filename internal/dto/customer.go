package dto

import (
	"customer-dashboard/internal/models"
)

// CustomerGroupResponse is one visible customer with all of its transactions
type CustomerGroupResponse struct {
	Customer     models.Customer      `json:"customer"`
	Transactions []models.Transaction `json:"transactions"`
	RowSpan      int                  `json:"row_span"`
}

// CustomerTransactionsResponse lists the transactions of one customer
type CustomerTransactionsResponse struct {
	Customer     models.Customer      `json:"customer"`
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}
