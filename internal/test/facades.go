package test

import (
	"context"
	"sync"

	"github.com/sureshift/backend/internal/domain/model"
	"github.com/sureshift/backend/internal/usecase"
	"github.com/sureshift/backend/internal/worker"
)

// FacadeStub provides controllable behaviour for every handler-facing
// operation.
type FacadeStub struct {
	RegisterAdminFn func(context.Context, string, string) error
	LoginFn         func(context.Context, string, string) (string, error)
	ParseTokenFn    func(string) (int64, error)
	SubmitOrderFn   func(context.Context, usecase.OrderInput) (*model.Order, error)
	OrderByIDFn     func(context.Context, int64) (*model.Order, error)
	OrdersFn        func(context.Context) ([]model.OrderStatusView, error)
	OrderViewFn     func(context.Context, string) (*model.OrderStatusView, error)
	SetStatusFn     func(context.Context, string, string) error
}

// RegisterAdmin delegates to the configured function or succeeds.
func (s FacadeStub) RegisterAdmin(ctx context.Context, username, password string) error {
	if s.RegisterAdminFn != nil {
		return s.RegisterAdminFn(ctx, username, password)
	}
	return nil
}

// Login delegates to the configured function or returns a fixed token.
func (s FacadeStub) Login(ctx context.Context, username, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return "token", nil
}

// ParseToken delegates to the configured function or accepts any token.
func (s FacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// SubmitOrder delegates or echoes the input back as a stored order.
func (s FacadeStub) SubmitOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error) {
	if s.SubmitOrderFn != nil {
		return s.SubmitOrderFn(ctx, in)
	}
	return &model.Order{ID: 1, OrderID: "SSON0000000000000000", Name: in.Name, Email: in.Email}, nil
}

// OrderByID delegates or returns a default order.
func (s FacadeStub) OrderByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderByIDFn != nil {
		return s.OrderByIDFn(ctx, id)
	}
	return &model.Order{ID: id, OrderID: "SSON0000000000000000"}, nil
}

// Orders delegates or returns a single default view.
func (s FacadeStub) Orders(ctx context.Context) ([]model.OrderStatusView, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.OrderStatusView{{OrderID: "SSON0000000000000000"}}, nil
}

// OrderView delegates or returns a default view for the id.
func (s FacadeStub) OrderView(ctx context.Context, orderID string) (*model.OrderStatusView, error) {
	if s.OrderViewFn != nil {
		return s.OrderViewFn(ctx, orderID)
	}
	return &model.OrderStatusView{OrderID: orderID}, nil
}

// SetStatus delegates to the configured function or succeeds.
func (s FacadeStub) SetStatus(ctx context.Context, orderID, status string) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, orderID, status)
	}
	return nil
}

// NotifierStub records enqueued notifications.
type NotifierStub struct {
	mu       sync.Mutex
	Messages []worker.Message
}

// Enqueue stores the message for later assertions.
func (s *NotifierStub) Enqueue(msg worker.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, msg)
}

// Sent returns a copy of the recorded messages.
func (s *NotifierStub) Sent() []worker.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]worker.Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}
