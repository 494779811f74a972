package viewmodel

import (
	"customer-dashboard/internal/models"
)

// Dashboard is the complete display-ready view of one dashboard state
type Dashboard struct {
	State  models.DashboardState
	Groups []RowGroup
	Chart  *models.ChartSeries
}

// RowCount returns the number of transaction rows in the table
func (d Dashboard) RowCount() int {
	n := 0
	for _, g := range d.Groups {
		n += g.RowSpan()
	}
	return n
}

// HasChart reports whether a chart should be drawn
func (d Dashboard) HasChart() bool {
	return d.Chart != nil && !d.Chart.IsEmpty()
}

// Build composes the table and, when the selection names a known customer,
// that customer's chart series. The selection is independent of the filters:
// a charted customer stays charted even when filtered out of the table.
func Build(customers []models.Customer, transactions []models.Transaction, state models.DashboardState) Dashboard {
	d := Dashboard{
		State:  state,
		Groups: BuildTable(customers, transactions, state.Filter),
	}

	if !state.Selection.HasSelection() {
		return d
	}

	customer, ok := FindCustomer(customers, *state.Selection.CustomerID)
	if !ok {
		return d
	}

	series := SelectCustomerSeries(customer.ID, customer.Name, transactions)
	d.Chart = &series
	return d
}
