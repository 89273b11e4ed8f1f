package dto

// StatusRequest assigns or overwrites the status of an order.
type StatusRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// OrderLookupRequest asks for the joined record of a single order id.
type OrderLookupRequest struct {
	OrderID string `json:"order_id"`
}
