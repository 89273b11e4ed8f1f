package repository

import (
	"context"

	"github.com/sureshift/backend/internal/domain/model"
)

// OrderRepository describes persistence operations for pickup orders.
type OrderRepository interface {
	// Create inserts the order and returns it with storage-assigned fields
	// populated. A colliding order id yields ErrAlreadyExists.
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// ListWithStatus returns all orders joined with their current status,
	// newest internal id first, including status rows without a matching
	// order and orders without a status.
	ListWithStatus(ctx context.Context) ([]model.OrderStatusView, error)
	GetViewByOrderID(ctx context.Context, orderID string) (*model.OrderStatusView, error)
}
