package usecase

import (
	"context"
	"errors"
	"testing"

	"servicios_ili/internal/domain/entities"
	mock_interfaces "servicios_ili/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAgendaUseCase_CreateEvent(t *testing.T) {
	t.Run("client required", func(t *testing.T) {
		uc := NewAgendaUseCase(nil, nil, nil)
		_, err := uc.CreateEvent(context.Background(), CreateAgendaEventInput{Title: "Visita"})
		if !errors.Is(err, ErrAgendaClientRequired) {
			t.Fatalf("expected ErrAgendaClientRequired, got %v", err)
		}
	})

	t.Run("title required", func(t *testing.T) {
		uc := NewAgendaUseCase(nil, nil, nil)
		_, err := uc.CreateEvent(context.Background(), CreateAgendaEventInput{ClientID: "c1", Title: "  "})
		if !errors.Is(err, ErrAgendaTitleRequired) {
			t.Fatalf("expected ErrAgendaTitleRequired, got %v", err)
		}
	})

	t.Run("times required", func(t *testing.T) {
		uc := NewAgendaUseCase(nil, nil, nil)
		_, err := uc.CreateEvent(context.Background(), CreateAgendaEventInput{
			ClientID: "c1", Title: "Visita", StartTime: "2024-06-10T09:00",
		})
		if !errors.Is(err, ErrAgendaTimeRequired) {
			t.Fatalf("expected ErrAgendaTimeRequired, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := NewAgendaUseCase(nil, nil, nil)
		_, err := uc.CreateEvent(context.Background(), CreateAgendaEventInput{
			ClientID: "c1", Title: "Visita",
			StartTime: "2024-06-10T09:00", EndTime: "2024-06-10T11:00",
			Type: "Reunion",
		})
		if !errors.Is(err, ErrInvalidAgendaType) {
			t.Fatalf("expected ErrInvalidAgendaType, got %v", err)
		}
	})

	t.Run("unknown client rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewAgendaUseCase(nil, clients, nil)

		clients.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Client{}, nil)

		_, err := uc.CreateEvent(context.Background(), CreateAgendaEventInput{
			ClientID: "ghost", Title: "Visita",
			StartTime: "2024-06-10T09:00", EndTime: "2024-06-10T11:00",
		})
		if !errors.Is(err, ErrAgendaClientNotFound) {
			t.Fatalf("expected ErrAgendaClientNotFound, got %v", err)
		}
	})

	t.Run("type defaults to Visita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgendaRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		ids := mock_interfaces.NewMockIIdentifierSource(ctrl)
		uc := NewAgendaUseCase(repo, clients, ids)

		clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		ids.EXPECT().NewID().Return("e1")
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.AgendaEvent{})).DoAndReturn(
			func(_ context.Context, e entities.AgendaEvent) (entities.AgendaEvent, error) {
				if e.Type != entities.AgendaEventVisita || e.ID != "e1" {
					t.Fatalf("unexpected event: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.CreateEvent(context.Background(), CreateAgendaEventInput{
			ClientID: "c1", Title: "Visita mensual",
			StartTime: "2024-06-10T09:00", EndTime: "2024-06-10T11:00",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
