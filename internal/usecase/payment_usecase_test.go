package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"servicios_ili/internal/domain/entities"
	mock_interfaces "servicios_ili/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_ChargeBudget(t *testing.T) {
	t.Run("empty budget number", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.ChargeBudget(context.Background(), "  ", nil)
		if !errors.Is(err, ErrInvalidPaymentBudget) {
			t.Fatalf("expected ErrInvalidPaymentBudget, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, fakeGateway{}, nil)
		_, err := uc.ChargeBudget(context.Background(), "ILI-1234", json.RawMessage("{not json"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.ChargeBudget(context.Background(), "ILI-1234", nil)
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("unknown budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, budgets, gateway, nil)

		budgets.EXPECT().GetByNumber(gomock.Any(), "ILI-9999").Return(entities.Budget{}, nil)

		_, err := uc.ChargeBudget(context.Background(), "ILI-9999", nil)
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("charge success records approved payment with budget total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		ids := mock_interfaces.NewMockIIdentifierSource(ctrl)
		uc := NewPaymentUseCase(repo, budgets, gateway, ids)

		total := decimal.RequireFromString("1500.50")
		budgets.EXPECT().GetByNumber(gomock.Any(), "ILI-1234").Return(entities.Budget{BudgetNumber: "ILI-1234", Total: total}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("bad enriched payload: %v", err)
				}
				if req["external_reference"] != "ILI-1234" {
					t.Fatalf("expected external_reference, got %v", req["external_reference"])
				}
				if req["transaction_amount"] != 1500.5 {
					t.Fatalf("amount must come from the stored budget, got %v", req["transaction_amount"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil
			},
		)
		ids.EXPECT().NewID().Return("p1")
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BudgetPayment{})).DoAndReturn(
			func(_ context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
				if p.Status != entities.PaymentStatusAprobado || p.ProviderPaymentID != "mp-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if !p.Amount.Equal(total) {
					t.Fatalf("unexpected amount: %s", p.Amount)
				}
				return p, nil
			},
		)

		// Caller-supplied amount must be ignored.
		payload := json.RawMessage(`{"transaction_amount": 1, "token": "tok"}`)
		p, err := uc.ChargeBudget(context.Background(), "ILI-1234", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p1" {
			t.Fatalf("unexpected id: %s", p.ID)
		}
	})

	t.Run("gateway failure is not recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, budgets, gateway, nil)

		budgets.EXPECT().GetByNumber(gomock.Any(), "ILI-1234").Return(entities.Budget{BudgetNumber: "ILI-1234"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		if _, err := uc.ChargeBudget(context.Background(), "ILI-1234", nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPaymentUseCase_ListByBudgetNumber(t *testing.T) {
	t.Run("empty number", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		if _, err := uc.ListByBudgetNumber(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentBudget) {
			t.Fatalf("expected ErrInvalidPaymentBudget, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByBudgetNumber(gomock.Any(), "ILI-1234").Return([]entities.BudgetPayment{{ID: "p1"}}, nil)

		list, err := uc.ListByBudgetNumber(context.Background(), "ILI-1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].ID != "p1" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})
}

func TestMapProviderStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":   entities.PaymentStatusAprobado,
		"Accredited": entities.PaymentStatusAprobado,
		"rejected":   entities.PaymentStatusRechazado,
		"cancelled":  entities.PaymentStatusRechazado,
		"in_process": entities.PaymentStatusPendiente,
		"":           entities.PaymentStatusPendiente,
	}
	for in, want := range cases {
		if got := mapProviderStatus(in); got != want {
			t.Fatalf("mapProviderStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

// fakeGateway satisfies IPaymentGateway for tests that only need a non-nil
// gateway.
type fakeGateway struct{}

func (fakeGateway) CreatePayment(context.Context, json.RawMessage) (string, string, json.RawMessage, error) {
	return "", "", nil, nil
}
