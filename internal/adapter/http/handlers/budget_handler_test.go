package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicios_ili/internal/adapter/http/handlers/mocks"
	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success returns number and link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().CreateBudget(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateBudgetInput{})).DoAndReturn(
			func(_ context.Context, in usecase.CreateBudgetInput) (entities.Budget, error) {
				if in.ClientID != "c1" || len(in.Items) != 1 || in.Items[0].UnitPrice != 150.5 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Budget{
					ID:           "98761234",
					BudgetNumber: "ILI-1234",
					DocumentLink: "/api/budgets/ILI-1234/document",
				}, nil
			},
		)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		payload := `{"client_id":"c1","items":[{"description":"Gas","quantity":2,"unit_price":150.5}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["budget_number"] != "ILI-1234" || body["document_link"] != "/api/budgets/ILI-1234/document" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().CreateBudget(gomock.Any(), gomock.Any()).Return(entities.Budget{}, usecase.ErrBudgetNegativeAmount)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString(`{"client_id":"c1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_DownloadDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *BudgetHandler) *gin.Engine {
		r := gin.New()
		r.GET("/api/budgets/:number/document", h.DownloadDocument)
		return r
	}

	t.Run("unknown budget maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().RenderDocument(gomock.Any(), "ILI-9999").Return(nil, usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/budgets/ILI-9999/document", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("render failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().RenderDocument(gomock.Any(), "ILI-1234").Return(nil, usecase.ErrBudgetDocumentRenderFail)

		req := httptest.NewRequest(http.MethodGet, "/api/budgets/ILI-1234/document", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("download success sets attachment headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().RenderDocument(gomock.Any(), "ILI-1234").Return([]byte("<html></html>"), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/budgets/ILI-1234/document", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Presupuesto_ILI-1234.html") {
			t.Fatalf("unexpected disposition: %s", cd)
		}
	})
}
