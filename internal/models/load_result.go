package models

import "time"

// Resource names a collection served by the data source
type Resource string

const (
	ResourceCustomers    Resource = "customers"
	ResourceTransactions Resource = "transactions"
)

// FetchOutcome is the result of fetching one collection
type FetchOutcome struct {
	Resource  Resource
	Count     int
	Err       error
	FetchedAt time.Time
	Duration  time.Duration
}

// OK reports whether the fetch succeeded
func (o FetchOutcome) OK() bool {
	return o.Err == nil
}

// LoadResult reports both fetches of one load. The fetches are independent:
// one may fail while the other succeeds.
type LoadResult struct {
	Customers    FetchOutcome
	Transactions FetchOutcome
}

// Outcomes returns both outcomes in a stable order
func (r LoadResult) Outcomes() []FetchOutcome {
	return []FetchOutcome{r.Customers, r.Transactions}
}

// Failed returns the resources whose fetch failed
func (r LoadResult) Failed() []Resource {
	var failed []Resource
	for _, o := range r.Outcomes() {
		if !o.OK() {
			failed = append(failed, o.Resource)
		}
	}
	return failed
}

// AllFailed reports whether no collection could be fetched
func (r LoadResult) AllFailed() bool {
	return !r.Customers.OK() && !r.Transactions.OK()
}

// ResourceState is what the dashboard knows about one held collection
type ResourceState struct {
	Resource  Resource
	Loaded    bool
	Count     int
	LastError string
	FetchedAt *time.Time
}

// Snapshot is a point-in-time copy of the held collections
type Snapshot struct {
	Customers         []Customer
	Transactions      []Transaction
	CustomersState    ResourceState
	TransactionsState ResourceState
	LoadedAt          *time.Time
}

// States returns both resource states in a stable order
func (s Snapshot) States() []ResourceState {
	return []ResourceState{s.CustomersState, s.TransactionsState}
}
