package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicios_ili/internal/adapter/http/handlers/mocks"
	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAgendaHandler_CreateEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields fail binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAgendaUseCase(ctrl)
		h := NewAgendaHandler(uc)

		r := gin.New()
		r.POST("/api/agenda", h.CreateEvent)

		req := httptest.NewRequest(http.MethodPost, "/api/agenda", bytes.NewBufferString(`{"title":"Visita"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAgendaUseCase(ctrl)
		h := NewAgendaHandler(uc)

		uc.EXPECT().CreateEvent(gomock.Any(), usecase.CreateAgendaEventInput{
			ClientID:  "c1",
			Title:     "Visita mensual",
			StartTime: "2024-06-10T09:00",
			EndTime:   "2024-06-10T11:00",
			Type:      entities.AgendaEventMantenimiento,
		}).Return(entities.AgendaEvent{ID: "e1"}, nil)

		r := gin.New()
		r.POST("/api/agenda", h.CreateEvent)

		payload := `{"client_id":"c1","title":"Visita mensual","start_time":"2024-06-10T09:00","end_time":"2024-06-10T11:00","type":"Mantenimiento"}`
		req := httptest.NewRequest(http.MethodPost, "/api/agenda", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("unknown client maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAgendaUseCase(ctrl)
		h := NewAgendaHandler(uc)

		uc.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(entities.AgendaEvent{}, usecase.ErrAgendaClientNotFound)

		r := gin.New()
		r.POST("/api/agenda", h.CreateEvent)

		payload := `{"client_id":"ghost","title":"Visita","start_time":"a","end_time":"b"}`
		req := httptest.NewRequest(http.MethodPost, "/api/agenda", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAgendaHandler_ListEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAgendaUseCase(ctrl)
	h := NewAgendaHandler(uc)

	uc.EXPECT().ListEvents(gomock.Any()).Return([]entities.AgendaEvent{{ID: "e1"}}, nil)

	r := gin.New()
	r.GET("/api/agenda", h.ListEvents)

	req := httptest.NewRequest(http.MethodGet, "/api/agenda", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
