package test

import (
	"context"
	"time"

	domainErrors "github.com/sureshift/backend/internal/domain/errors"
	"github.com/sureshift/backend/internal/domain/model"
)

// AdminRepositoryStub stores admins in-memory for tests.
type AdminRepositoryStub struct {
	Admins map[string]*model.Admin
	ByID   map[int64]*model.Admin
	Next   int64
	Err    error
}

// NewAdminRepositoryStub constructs stub repository with initialized maps.
func NewAdminRepositoryStub() *AdminRepositoryStub {
	return &AdminRepositoryStub{
		Admins: make(map[string]*model.Admin),
		ByID:   make(map[int64]*model.Admin),
		Next:   1,
	}
}

// Create registers admin unless the username is taken or the stub carries an
// explicit error.
func (s *AdminRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Admins == nil {
		s.Admins = make(map[string]*model.Admin)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Admin)
	}
	if _, exists := s.Admins[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	admin := &model.Admin{ID: s.Next, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Admins[username] = admin
	s.ByID[admin.ID] = admin
	return admin, nil
}

// GetByUsername fetches admin by username or returns not found.
func (s *AdminRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.Admins[username]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches admin by identifier or returns not found.
func (s *AdminRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.ByID[id]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// StatusRepositoryStub keeps the latest status per order id in a map.
type StatusRepositoryStub struct {
	UpsertFn func(context.Context, string, string) error
	Records  map[string]string
	Err      error
}

// NewStatusRepositoryStub constructs the stub with an initialized map.
func NewStatusRepositoryStub() *StatusRepositoryStub {
	return &StatusRepositoryStub{Records: make(map[string]string)}
}

// Upsert records the status, overwriting any previous value.
func (s *StatusRepositoryStub) Upsert(ctx context.Context, orderID, status string) error {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, orderID, status)
	}
	if s.Err != nil {
		return s.Err
	}
	if s.Records == nil {
		s.Records = make(map[string]string)
	}
	s.Records[orderID] = status
	return nil
}

// OrderRepositoryStub stores orders in-memory and, when wired with a status
// stub, serves joined views the way the real storage does.
type OrderRepositoryStub struct {
	CreateFn func(context.Context, model.Order) (*model.Order, error)
	Orders   []model.Order
	Statuses *StatusRepositoryStub
	Next     int64
	Err      error
}

// NewOrderRepositoryStub constructs the stub joined to a status stub.
func NewOrderRepositoryStub(statuses *StatusRepositoryStub) *OrderRepositoryStub {
	return &OrderRepositoryStub{Statuses: statuses, Next: 1}
}

// Create appends the order, rejecting duplicate order ids.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Orders {
		if existing.OrderID == order.OrderID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order.ID = s.Next
	s.Next++
	if order.EntryDate.IsZero() {
		order.EntryDate = time.Now()
	}
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// GetByID returns the order with the internal id or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListWithStatus joins orders with the status map, newest internal id first,
// including status entries with no matching order.
func (s *OrderRepositoryStub) ListWithStatus(ctx context.Context) ([]model.OrderStatusView, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	var result []model.OrderStatusView
	seen := make(map[string]bool)
	for i := len(s.Orders) - 1; i >= 0; i-- {
		order := s.Orders[i]
		view := model.OrderStatusView{Order: &order, OrderID: order.OrderID}
		if status, ok := s.statusFor(order.OrderID); ok {
			view.Status = &status
		}
		seen[order.OrderID] = true
		result = append(result, view)
	}
	if s.Statuses != nil {
		for orderID, status := range s.Statuses.Records {
			if seen[orderID] {
				continue
			}
			st := status
			result = append(result, model.OrderStatusView{OrderID: orderID, Status: &st})
		}
	}
	return result, nil
}

// GetViewByOrderID returns the joined record matched on either side of the
// join, or not found.
func (s *OrderRepositoryStub) GetViewByOrderID(ctx context.Context, orderID string) (*model.OrderStatusView, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.OrderID == orderID {
			order := o
			view := model.OrderStatusView{Order: &order, OrderID: orderID}
			if status, ok := s.statusFor(orderID); ok {
				view.Status = &status
			}
			return &view, nil
		}
	}
	if status, ok := s.statusFor(orderID); ok {
		return &model.OrderStatusView{OrderID: orderID, Status: &status}, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) statusFor(orderID string) (string, bool) {
	if s.Statuses == nil || s.Statuses.Records == nil {
		return "", false
	}
	status, ok := s.Statuses.Records[orderID]
	return status, ok
}
