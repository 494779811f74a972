package models

// Customer is a customer record as served by the data source
type Customer struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}
