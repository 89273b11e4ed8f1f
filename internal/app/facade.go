package app

import (
	"context"

	"github.com/sureshift/backend/internal/adapter/mailer"
	"github.com/sureshift/backend/internal/domain/model"
	"github.com/sureshift/backend/internal/usecase"
	"github.com/sureshift/backend/internal/worker"
)

const (
	confirmationSubject = "Your Pickup Request Received"
	operatorSubject     = "New Pickup Request"
)

// Notifier queues outbound notifications without blocking the caller.
type Notifier interface {
	Enqueue(msg worker.Message)
}

// PickupFacade aggregates the application's use cases behind a single
// surface consumed by HTTP handlers.
type PickupFacade struct {
	auth          *usecase.AuthUseCase
	orders        *usecase.OrderUseCase
	notify        Notifier
	operatorEmail string
}

// NewPickupFacade constructs PickupFacade.
func NewPickupFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, notify Notifier, operatorEmail string) *PickupFacade {
	return &PickupFacade{auth: auth, orders: orders, notify: notify, operatorEmail: operatorEmail}
}

func (f *PickupFacade) RegisterAdmin(ctx context.Context, username, password string) error {
	_, err := f.auth.Register(ctx, username, password)
	return err
}

func (f *PickupFacade) Login(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *PickupFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

// SubmitOrder persists a pickup request and queues the confirmation and
// operator notifications. The notifications never gate the result: once the
// order is committed, submission has succeeded.
func (f *PickupFacade) SubmitOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error) {
	order, err := f.orders.Submit(ctx, in)
	if err != nil {
		return nil, err
	}

	details := mailer.OrderDetails(order)
	f.notify.Enqueue(worker.Message{
		To:      order.Email,
		Subject: confirmationSubject,
		Body:    "Thank you for your request. Here are your details:\n" + details,
	})
	if f.operatorEmail != "" {
		f.notify.Enqueue(worker.Message{
			To:      f.operatorEmail,
			Subject: operatorSubject,
			Body:    details,
		})
	}

	return order, nil
}

func (f *PickupFacade) SetStatus(ctx context.Context, orderID, status string) error {
	return f.orders.SetStatus(ctx, orderID, status)
}

func (f *PickupFacade) OrderByID(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.GetByID(ctx, id)
}

func (f *PickupFacade) Orders(ctx context.Context) ([]model.OrderStatusView, error) {
	return f.orders.List(ctx)
}

func (f *PickupFacade) OrderView(ctx context.Context, orderID string) (*model.OrderStatusView, error) {
	return f.orders.View(ctx, orderID)
}
