package model

// StatusRecord holds the current status label for an order id.
// At most one record exists per order id; writes overwrite in place.
type StatusRecord struct {
	ID      int64
	OrderID string
	Status  string
}

// OrderStatusView joins an order with its current status. Either side may be
// absent: Order is nil for a status row without a matching order, Status is
// nil for an order that has not been assigned a status yet.
type OrderStatusView struct {
	Order   *Order
	OrderID string
	Status  *string
}
