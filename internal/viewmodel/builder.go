// Package viewmodel derives everything the dashboard displays from the raw
// customer and transaction collections and the current dashboard state.
// Every function here is pure: inputs are never modified and nil inputs are
// treated as empty collections.
package viewmodel

import (
	"strings"

	"customer-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionsFor returns the transactions referencing customerID in source order.
// The result is never nil.
func TransactionsFor(transactions []models.Transaction, customerID models.ID) []models.Transaction {
	matched := make([]models.Transaction, 0)
	for _, tx := range transactions {
		if tx.BelongsTo(customerID) {
			matched = append(matched, tx)
		}
	}
	return matched
}

// VisibleCustomers keeps a customer when its name contains nameFilter
// (case-insensitive) and at least one of its transactions has an amount whose
// decimal string form contains amountFilter. The amount match is a plain
// substring match on the numeral, so "5" matches 5, 15 and 51.5.
// A customer without transactions is never visible.
func VisibleCustomers(customers []models.Customer, transactions []models.Transaction, nameFilter, amountFilter string) []models.Customer {
	visible := make([]models.Customer, 0)
	for _, customer := range customers {
		if customerMatches(customer, TransactionsFor(transactions, customer.ID), nameFilter, amountFilter) {
			visible = append(visible, customer)
		}
	}
	return visible
}

// SelectCustomerSeries maps the customer's transactions to parallel date and
// amount sequences labelled with the customer's display name.
func SelectCustomerSeries(customerID models.ID, customerName string, transactions []models.Transaction) models.ChartSeries {
	own := TransactionsFor(transactions, customerID)

	series := models.ChartSeries{
		CustomerID: customerID,
		Label:      customerName,
		Dates:      make([]string, len(own)),
		Amounts:    make([]decimal.Decimal, len(own)),
	}
	for i, tx := range own {
		series.Dates[i] = tx.Date
		series.Amounts[i] = tx.Amount
	}
	return series
}

func customerMatches(customer models.Customer, own []models.Transaction, nameFilter, amountFilter string) bool {
	if !nameMatches(customer.Name, nameFilter) {
		return false
	}
	for _, tx := range own {
		if amountMatches(tx, amountFilter) {
			return true
		}
	}
	return false
}

func nameMatches(name, filter string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

func amountMatches(tx models.Transaction, filter string) bool {
	return strings.Contains(tx.AmountText(), filter)
}
