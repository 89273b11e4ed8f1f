package dto

// OrderRequest describes the pickup intake payload.
type OrderRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PickupDate    string `json:"pickup_date"`
	PickupTime    string `json:"pickup_time"`
	PickupAddress string `json:"pickup_address"`
	DropAddress   string `json:"drop_address"`
	Purpose       string `json:"purpose"`
}

// OrderCreatedResponse returns the assigned order identifier.
type OrderCreatedResponse struct {
	OrderID string `json:"order_id"`
}

// OrderRecordResponse mirrors a stored order row.
type OrderRecordResponse struct {
	ID            int64  `json:"id"`
	OrderID       string `json:"order_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PickupDate    string `json:"pickup_date"`
	PickupTime    string `json:"pickup_time"`
	PickupAddress string `json:"pickup_address"`
	DropAddress   string `json:"drop_address"`
	Purpose       string `json:"purpose"`
	EntryDate     string `json:"entry_date"`
}

// OrderViewResponse is an order joined with its current status. Order fields
// are null for a status row without a matching order; status is null for an
// order that has no status yet.
type OrderViewResponse struct {
	EntryDate     *string `json:"entry_date"`
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	PickupDate    *string `json:"pickup_date"`
	PickupTime    *string `json:"pickup_time"`
	PickupAddress *string `json:"pickup_address"`
	DropAddress   *string `json:"drop_address"`
	OrderID       string  `json:"order_id"`
	Purpose       *string `json:"purpose"`
	Status        *string `json:"status"`
}
