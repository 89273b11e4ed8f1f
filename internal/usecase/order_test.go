package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/sureshift/backend/internal/domain/errors"
	"github.com/sureshift/backend/internal/domain/model"
	"github.com/sureshift/backend/internal/pkg/orderid"
	"github.com/sureshift/backend/internal/test"
	"github.com/sureshift/backend/internal/usecase"
)

func validInput() usecase.OrderInput {
	return usecase.OrderInput{
		Name:          "Ravi Kumar",
		Email:         "ravi@example.com",
		Phone:         "9876543210",
		PickupDate:    "2026-09-15",
		PickupTime:    "14:30",
		PickupAddress: "12 MG Road, Bengaluru",
		DropAddress:   "45 Park Street, Kolkata",
		Purpose:       "House relocation",
	}
}

func newOrderUseCase(orders *test.OrderRepositoryStub, statuses *test.StatusRepositoryStub) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(orders, statuses, orderid.New("SSON"))
}

func TestSubmitPersistsOrder(t *testing.T) {
	statuses := test.NewStatusRepositoryStub()
	orders := test.NewOrderRepositoryStub(statuses)
	uc := newOrderUseCase(orders, statuses)

	order, err := uc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(order.OrderID) != orderid.Length {
		t.Errorf("expected %d char order id, got %q", orderid.Length, order.OrderID)
	}
	if !strings.HasPrefix(order.OrderID, "SSON") {
		t.Errorf("expected SSON prefix, got %q", order.OrderID)
	}
	if order.ID == 0 {
		t.Error("expected assigned internal id")
	}
	if order.PickupTime != "14:30" {
		t.Errorf("expected normalized pickup time, got %q", order.PickupTime)
	}
	if got := order.PickupDate.Format("2006-01-02"); got != "2026-09-15" {
		t.Errorf("expected pickup date 2026-09-15, got %s", got)
	}
	if len(orders.Orders) != 1 {
		t.Fatalf("expected one stored order, got %d", len(orders.Orders))
	}
}

func TestSubmitRequiredFields(t *testing.T) {
	uc := newOrderUseCase(test.NewOrderRepositoryStub(nil), test.NewStatusRepositoryStub())
	ctx := context.Background()

	mutations := map[string]func(*usecase.OrderInput){
		"name":           func(in *usecase.OrderInput) { in.Name = "" },
		"email":          func(in *usecase.OrderInput) { in.Email = "  " },
		"phone":          func(in *usecase.OrderInput) { in.Phone = "" },
		"pickup_date":    func(in *usecase.OrderInput) { in.PickupDate = "" },
		"pickup_time":    func(in *usecase.OrderInput) { in.PickupTime = "" },
		"pickup_address": func(in *usecase.OrderInput) { in.PickupAddress = "" },
		"drop_address":   func(in *usecase.OrderInput) { in.DropAddress = "" },
		"purpose":        func(in *usecase.OrderInput) { in.Purpose = "" },
	}
	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			if _, err := uc.Submit(ctx, in); !errors.Is(err, domainErrors.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestSubmitRejectsMalformedDateAndTime(t *testing.T) {
	uc := newOrderUseCase(test.NewOrderRepositoryStub(nil), test.NewStatusRepositoryStub())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*usecase.OrderInput)
	}{
		{"date wrong layout", func(in *usecase.OrderInput) { in.PickupDate = "15-09-2026" }},
		{"date garbage", func(in *usecase.OrderInput) { in.PickupDate = "soon" }},
		{"time garbage", func(in *usecase.OrderInput) { in.PickupTime = "afternoon" }},
		{"time out of range", func(in *usecase.OrderInput) { in.PickupTime = "25:99" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := uc.Submit(ctx, in); !errors.Is(err, domainErrors.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestSubmitAcceptsSecondsInPickupTime(t *testing.T) {
	uc := newOrderUseCase(test.NewOrderRepositoryStub(nil), test.NewStatusRepositoryStub())

	in := validInput()
	in.PickupTime = "09:05:30"
	order, err := uc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order.PickupTime != "09:05" {
		t.Errorf("expected pickup time normalized to 09:05, got %q", order.PickupTime)
	}
}

func TestSubmitRetriesOnIDCollision(t *testing.T) {
	orders := test.NewOrderRepositoryStub(nil)
	uc := newOrderUseCase(orders, test.NewStatusRepositoryStub())

	attempts := 0
	orders.CreateFn = func(ctx context.Context, order model.Order) (*model.Order, error) {
		attempts++
		if attempts < 3 {
			return nil, domainErrors.ErrAlreadyExists
		}
		order.ID = int64(attempts)
		return &order, nil
	}

	order, err := uc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 insert attempts, got %d", attempts)
	}
	if order.ID != 3 {
		t.Errorf("expected order from final attempt, got id %d", order.ID)
	}
}

func TestSubmitGivesUpAfterBoundedRetries(t *testing.T) {
	orders := test.NewOrderRepositoryStub(nil)
	uc := newOrderUseCase(orders, test.NewStatusRepositoryStub())

	attempts := 0
	orders.CreateFn = func(ctx context.Context, order model.Order) (*model.Order, error) {
		attempts++
		return nil, domainErrors.ErrAlreadyExists
	}

	_, err := uc.Submit(context.Background(), validInput())
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if attempts != usecase.SubmitAttempts {
		t.Errorf("expected %d attempts, got %d", usecase.SubmitAttempts, attempts)
	}
}

func TestSubmitSurfacesStorageErrorImmediately(t *testing.T) {
	orders := test.NewOrderRepositoryStub(nil)
	uc := newOrderUseCase(orders, test.NewStatusRepositoryStub())

	attempts := 0
	storageErr := errors.New("connection lost")
	orders.CreateFn = func(ctx context.Context, order model.Order) (*model.Order, error) {
		attempts++
		return nil, storageErr
	}

	_, err := uc.Submit(context.Background(), validInput())
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected single attempt, got %d", attempts)
	}
}

func TestSetStatusUpsert(t *testing.T) {
	statuses := test.NewStatusRepositoryStub()
	uc := newOrderUseCase(test.NewOrderRepositoryStub(statuses), statuses)
	ctx := context.Background()

	if err := uc.SetStatus(ctx, "SSON1234ABCD5678EF90", "In Transit"); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := uc.SetStatus(ctx, "SSON1234ABCD5678EF90", "Delivered"); err != nil {
		t.Fatalf("overwrite status: %v", err)
	}

	if got := statuses.Records["SSON1234ABCD5678EF90"]; got != "Delivered" {
		t.Errorf("expected latest status Delivered, got %q", got)
	}
	if len(statuses.Records) != 1 {
		t.Errorf("expected single status record, got %d", len(statuses.Records))
	}
}

func TestSetStatusValidation(t *testing.T) {
	uc := newOrderUseCase(test.NewOrderRepositoryStub(nil), test.NewStatusRepositoryStub())
	ctx := context.Background()

	if err := uc.SetStatus(ctx, "", "Delivered"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Errorf("expected ErrValidation for empty order id, got %v", err)
	}
	if err := uc.SetStatus(ctx, "SSON1234ABCD5678EF90", "   "); !errors.Is(err, domainErrors.ErrValidation) {
		t.Errorf("expected ErrValidation for blank status, got %v", err)
	}
}

func TestViewJoinsOrderAndStatus(t *testing.T) {
	statuses := test.NewStatusRepositoryStub()
	orders := test.NewOrderRepositoryStub(statuses)
	uc := newOrderUseCase(orders, statuses)
	ctx := context.Background()

	order, err := uc.Submit(ctx, validInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	view, err := uc.View(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.Order == nil || view.Order.OrderID != order.OrderID {
		t.Fatal("expected joined order record")
	}
	if view.Status != nil {
		t.Errorf("expected nil status before any update, got %q", *view.Status)
	}

	if err := uc.SetStatus(ctx, order.OrderID, "In Transit"); err != nil {
		t.Fatalf("set status: %v", err)
	}
	view, err = uc.View(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("view after status: %v", err)
	}
	if view.Status == nil || *view.Status != "In Transit" {
		t.Error("expected status In Transit in joined view")
	}
}

func TestViewOrphanStatus(t *testing.T) {
	statuses := test.NewStatusRepositoryStub()
	orders := test.NewOrderRepositoryStub(statuses)
	uc := newOrderUseCase(orders, statuses)
	ctx := context.Background()

	if err := uc.SetStatus(ctx, "SSONDEADBEEF00000000", "Pending"); err != nil {
		t.Fatalf("set status: %v", err)
	}

	view, err := uc.View(ctx, "SSONDEADBEEF00000000")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.Order != nil {
		t.Error("expected no order side for orphan status")
	}
	if view.Status == nil || *view.Status != "Pending" {
		t.Error("expected orphan status Pending")
	}
}

func TestViewValidation(t *testing.T) {
	uc := newOrderUseCase(test.NewOrderRepositoryStub(nil), test.NewStatusRepositoryStub())
	if _, err := uc.View(context.Background(), "  "); !errors.Is(err, domainErrors.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestViewUnknownOrder(t *testing.T) {
	statuses := test.NewStatusRepositoryStub()
	uc := newOrderUseCase(test.NewOrderRepositoryStub(statuses), statuses)
	if _, err := uc.View(context.Background(), "SSON0000000000000000"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	statuses := test.NewStatusRepositoryStub()
	orders := test.NewOrderRepositoryStub(statuses)
	uc := newOrderUseCase(orders, statuses)
	ctx := context.Background()

	first, err := uc.Submit(ctx, validInput())
	if err != nil {
		t.Fatalf("submit first: %v", err)
	}
	second := validInput()
	second.Name = "Anita Desai"
	secondOrder, err := uc.Submit(ctx, second)
	if err != nil {
		t.Fatalf("submit second: %v", err)
	}

	views, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].OrderID != secondOrder.OrderID {
		t.Errorf("expected newest order first, got %s", views[0].OrderID)
	}
	if views[1].OrderID != first.OrderID {
		t.Errorf("expected oldest order last, got %s", views[1].OrderID)
	}
}

func TestParseOrderInputTrimsFields(t *testing.T) {
	in := validInput()
	in.Name = "  Ravi Kumar  "
	in.Email = " ravi@example.com "

	draft, err := usecase.ParseOrderInput(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.Name != "Ravi Kumar" {
		t.Errorf("expected trimmed name, got %q", draft.Name)
	}
	if draft.Email != "ravi@example.com" {
		t.Errorf("expected trimmed email, got %q", draft.Email)
	}
	if draft.PickupDate != time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected pickup date %v", draft.PickupDate)
	}
}
