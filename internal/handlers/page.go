package handlers

import (
	"net/url"

	"customer-dashboard/internal/models"
	"customer-dashboard/internal/viewmodel"
)

const (
	dashboardTitle  = "Customers and Transactions"
	dashboardPageID = "dashboard_page"
	chartWidth      = 720
	chartHeight     = 360
)

// dashboardPage is the data handed to the dashboard_page template
type dashboardPage struct {
	Title    string
	Filter   models.FilterState
	Selected string
	Groups   []pageGroup
	Chart    *viewmodel.ChartLayout
	Failed   []string
}

type pageGroup struct {
	Customer     models.Customer
	Transactions []models.Transaction
	ChartURL     string
}

func (g pageGroup) RowSpan() int {
	return len(g.Transactions)
}

func newDashboardPage(view viewmodel.Dashboard, snapshot models.Snapshot) dashboardPage {
	page := dashboardPage{
		Title:  dashboardTitle,
		Filter: view.State.Filter,
		Groups: make([]pageGroup, len(view.Groups)),
	}

	if view.State.Selection.HasSelection() {
		page.Selected = view.State.Selection.CustomerID.String()
	}

	for i, group := range view.Groups {
		page.Groups[i] = pageGroup{
			Customer:     group.Customer,
			Transactions: group.Transactions,
			ChartURL:     chartURL(view.State.Filter, group.Customer.ID),
		}
	}

	if view.HasChart() {
		layout := viewmodel.LayoutBars(*view.Chart, chartWidth, chartHeight)
		page.Chart = &layout
	}

	for _, state := range snapshot.States() {
		if state.LastError != "" {
			page.Failed = append(page.Failed, string(state.Resource))
		}
	}

	return page
}

// chartURL links to the dashboard with the customer selected and the
// current filters preserved
func chartURL(filter models.FilterState, customerID models.ID) string {
	q := url.Values{}
	if filter.NameFilter != "" {
		q.Set("name", filter.NameFilter)
	}
	if filter.AmountFilter != "" {
		q.Set("amount", filter.AmountFilter)
	}
	q.Set("customer", customerID.String())
	return "/?" + q.Encode()
}
