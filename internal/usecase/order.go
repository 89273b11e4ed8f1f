package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/sureshift/backend/internal/domain/errors"
	"github.com/sureshift/backend/internal/domain/model"
	"github.com/sureshift/backend/internal/domain/repository"
	"github.com/sureshift/backend/internal/pkg/orderid"
)

// submitAttempts bounds regeneration when a generated order id collides.
const submitAttempts = 3

// OrderUseCase encapsulates the order lifecycle: intake, read views, and
// status transitions.
type OrderUseCase struct {
	orders    repository.OrderRepository
	statuses  repository.StatusRepository
	generator *orderid.Generator
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, statuses repository.StatusRepository, generator *orderid.Generator) *OrderUseCase {
	return &OrderUseCase{orders: orders, statuses: statuses, generator: generator}
}

// Submit validates intake fields, assigns an order id, and persists the
// order. On an id collision a fresh id is generated and the insert retried a
// bounded number of times before the error is surfaced.
func (u *OrderUseCase) Submit(ctx context.Context, in OrderInput) (*model.Order, error) {
	draft, err := ParseOrderInput(in)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < submitAttempts; attempt++ {
		draft.OrderID = u.generator.Generate()
		order, err := u.orders.Create(ctx, *draft)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// SetStatus assigns or overwrites the status label for an order id. The
// order id need not reference an existing order, and any label may replace
// any other; only the latest write survives.
func (u *OrderUseCase) SetStatus(ctx context.Context, orderID, status string) error {
	orderID = strings.TrimSpace(orderID)
	status = strings.TrimSpace(status)
	if orderID == "" || status == "" {
		return domainErrors.ErrValidation
	}
	return u.statuses.Upsert(ctx, orderID, status)
}

// GetByID fetches a single order by internal identifier.
func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// View returns the joined order/status record for an order id.
func (u *OrderUseCase) View(ctx context.Context, orderID string) (*model.OrderStatusView, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.GetViewByOrderID(ctx, orderID)
}

// List returns all joined order/status records, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.OrderStatusView, error) {
	return u.orders.ListWithStatus(ctx)
}
