package dto

import (
	"time"

	"customer-dashboard/internal/models"
)

// DashboardQuery is the serialized dashboard state carried in the query string
type DashboardQuery struct {
	Name     string `query:"name" validate:"filter_text,max=256"`
	Amount   string `query:"amount" validate:"filter_text,max=256"`
	Customer string `query:"customer" validate:"max=128"`
}

// ToState converts the query into the dashboard state record
func (q DashboardQuery) ToState() models.DashboardState {
	state := models.DashboardState{
		Filter: models.FilterState{
			NameFilter:   q.Name,
			AmountFilter: q.Amount,
		},
	}
	if q.Customer != "" {
		state.Selection = state.Selection.Select(models.ParseID(q.Customer))
	}
	return state
}

// DashboardResponse is the JSON rendition of the dashboard view-model
type DashboardResponse struct {
	Filter    models.FilterState      `json:"filter"`
	Customers []CustomerGroupResponse `json:"customers"`
	Chart     *ChartSeriesResponse    `json:"chart,omitempty"`
	Meta      DashboardMeta           `json:"meta"`
}

type DashboardMeta struct {
	VisibleCustomers int        `json:"visible_customers"`
	Rows             int        `json:"rows"`
	LoadedAt         *time.Time `json:"loaded_at,omitempty"`
}

// ResourceStatus describes the last load of one data source collection
type ResourceStatus struct {
	Resource  string     `json:"resource"`
	Loaded    bool       `json:"loaded"`
	Count     int        `json:"count"`
	LastError string     `json:"last_error,omitempty"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
}

// ReloadResponse reports the outcome of a reload request
type ReloadResponse struct {
	Resources []ResourceStatus `json:"resources"`
}

// HealthResponse is served by the health endpoint
type HealthResponse struct {
	Status         string           `json:"status"`
	Time           string           `json:"time"`
	CircuitBreaker string           `json:"circuit_breaker"`
	Resources      []ResourceStatus `json:"resources"`
}
