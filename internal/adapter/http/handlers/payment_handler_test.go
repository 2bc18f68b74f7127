package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicios_ili/internal/adapter/http/handlers/mocks"
	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_ChargeBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PaymentHandler) *gin.Engine {
		r := gin.New()
		r.POST("/api/budgets/:number/payments", h.ChargeBudget)
		return r
	}

	t.Run("forwards raw body as payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().ChargeBudget(gomock.Any(), "ILI-1234", gomock.Any()).DoAndReturn(
			func(_ context.Context, number string, payload json.RawMessage) (entities.BudgetPayment, error) {
				if string(payload) != `{"token":"tok"}` {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.BudgetPayment{ID: "p1", BudgetNumber: number, Status: entities.PaymentStatusAprobado}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets/ILI-1234/payments", bytes.NewBufferString(`{"token":"tok"}`))
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["status"] != "aprobado" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("gateway unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().ChargeBudget(gomock.Any(), "ILI-1234", gomock.Any()).Return(entities.BudgetPayment{}, usecase.ErrPaymentGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets/ILI-1234/payments", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("unknown budget maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().ChargeBudget(gomock.Any(), "ILI-9999", gomock.Any()).Return(entities.BudgetPayment{}, usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets/ILI-9999/payments", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid payload maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().ChargeBudget(gomock.Any(), "ILI-1234", gomock.Any()).Return(entities.BudgetPayment{}, usecase.ErrInvalidPaymentPayload)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets/ILI-1234/payments", bytes.NewBufferString("{oops"))
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty history returns empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().ListByBudgetNumber(gomock.Any(), "ILI-1234").Return(nil, nil)

		r := gin.New()
		r.GET("/api/budgets/:number/payments", h.ListPayments)

		req := httptest.NewRequest(http.MethodGet, "/api/budgets/ILI-1234/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); got != "[]" {
			t.Fatalf("expected empty list, got %s", got)
		}
	})
}
