package models

// FilterState holds the two free-text filters of the dashboard
type FilterState struct {
	NameFilter   string `json:"name"`
	AmountFilter string `json:"amount"`
}

// IsEmpty reports whether neither filter is set
func (f FilterState) IsEmpty() bool {
	return f.NameFilter == "" && f.AmountFilter == ""
}

// SelectionState names the customer whose chart is displayed, if any
type SelectionState struct {
	CustomerID *ID `json:"customer_id,omitempty"`
}

// HasSelection reports whether a customer is selected
func (s SelectionState) HasSelection() bool {
	return s.CustomerID != nil && !s.CustomerID.IsZero()
}

// Select replaces the current selection
func (s SelectionState) Select(id ID) SelectionState {
	return SelectionState{CustomerID: &id}
}

// DashboardState is the full user-controlled state of one dashboard view.
// It is replaced wholesale on every interaction.
type DashboardState struct {
	Filter    FilterState    `json:"filter"`
	Selection SelectionState `json:"selection"`
}
