package handlers

import (
	"context"

	"github.com/sureshift/backend/internal/domain/model"
	"github.com/sureshift/backend/internal/usecase"
)

// AdminFacade describes authentication capabilities required by handlers.
type AdminFacade interface {
	RegisterAdmin(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// OrderFacade encapsulates order intake and read views exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error)
	OrderByID(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context) ([]model.OrderStatusView, error)
	OrderView(ctx context.Context, orderID string) (*model.OrderStatusView, error)
}

// StatusFacade provides status mutation operations.
type StatusFacade interface {
	SetStatus(ctx context.Context, orderID, status string) error
}

// PickupFacade aggregates the full set of operations used across handlers.
type PickupFacade interface {
	AdminFacade
	OrderFacade
	StatusFacade
}
