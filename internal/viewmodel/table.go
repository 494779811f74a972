package viewmodel

import (
	"customer-dashboard/internal/models"
)

// RowGroup is one visible customer with all of its transactions. The table
// renders the customer name and the chart action once per group, spanning
// every transaction row.
type RowGroup struct {
	Customer     models.Customer
	Transactions []models.Transaction
}

// RowSpan is the number of table rows the group occupies
func (g RowGroup) RowSpan() int {
	return len(g.Transactions)
}

// BuildTable groups every visible customer with its transactions.
// The amount filter only decides which customers are visible; a visible
// customer always shows all of its transactions.
func BuildTable(customers []models.Customer, transactions []models.Transaction, filter models.FilterState) []RowGroup {
	groups := make([]RowGroup, 0)
	for _, customer := range customers {
		own := TransactionsFor(transactions, customer.ID)
		if !customerMatches(customer, own, filter.NameFilter, filter.AmountFilter) {
			continue
		}
		groups = append(groups, RowGroup{Customer: customer, Transactions: own})
	}
	return groups
}

// FindCustomer returns the first customer with the given id
func FindCustomer(customers []models.Customer, id models.ID) (models.Customer, bool) {
	for _, customer := range customers {
		if customer.ID == id {
			return customer, true
		}
	}
	return models.Customer{}, false
}
