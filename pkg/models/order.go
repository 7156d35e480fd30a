package models

// Order is the backend's persisted representation of a checkout.
// Quantities is optional: not every deployment of the order endpoint stores
// per-line quantities, so it is never relied upon for totals.
type Order struct {
	ID         string   `json:"_id,omitempty"`
	User       string   `json:"user"`
	Products   []string `json:"products"`
	Quantities []int    `json:"quantities,omitempty"`
	OrderDate  string   `json:"orderDate,omitempty"`
	Total      float64  `json:"total"`
}
