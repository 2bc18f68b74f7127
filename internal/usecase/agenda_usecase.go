package usecase

import (
	"context"
	"errors"
	"strings"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

var (
	ErrAgendaTitleRequired  = errors.New("agenda event title required")
	ErrAgendaClientRequired = errors.New("agenda event client required")
	ErrAgendaClientNotFound = errors.New("agenda event client not found")
	ErrAgendaTimeRequired   = errors.New("agenda event start and end times required")
	ErrInvalidAgendaType    = errors.New("invalid agenda event type")
)

// IAgendaUseCase exposes scheduled-visit operations. Events are immutable.
type IAgendaUseCase interface {
	CreateEvent(ctx context.Context, in CreateAgendaEventInput) (entities.AgendaEvent, error)
	ListEvents(ctx context.Context) ([]entities.AgendaEvent, error)
}

type CreateAgendaEventInput struct {
	ClientID    string
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Type        entities.AgendaEventType
}

type AgendaUseCase struct {
	repo    interfaces.IAgendaRepository
	clients interfaces.IClientRepository
	ids     interfaces.IIdentifierSource
}

var _ IAgendaUseCase = (*AgendaUseCase)(nil)

func NewAgendaUseCase(repo interfaces.IAgendaRepository, clients interfaces.IClientRepository, ids interfaces.IIdentifierSource) *AgendaUseCase {
	return &AgendaUseCase{repo: repo, clients: clients, ids: ids}
}

func (u *AgendaUseCase) CreateEvent(ctx context.Context, in CreateAgendaEventInput) (entities.AgendaEvent, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.AgendaEvent{}, ErrAgendaClientRequired
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.AgendaEvent{}, ErrAgendaTitleRequired
	}
	if strings.TrimSpace(in.StartTime) == "" || strings.TrimSpace(in.EndTime) == "" {
		return entities.AgendaEvent{}, ErrAgendaTimeRequired
	}

	eventType := in.Type
	if eventType == "" {
		eventType = entities.AgendaEventVisita
	}
	if !eventType.Valid() {
		return entities.AgendaEvent{}, ErrInvalidAgendaType
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.AgendaEvent{}, err
	}
	if client.ID == "" {
		return entities.AgendaEvent{}, ErrAgendaClientNotFound
	}

	e := entities.AgendaEvent{
		ID:          u.ids.NewID(),
		ClientID:    clientID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		StartTime:   strings.TrimSpace(in.StartTime),
		EndTime:     strings.TrimSpace(in.EndTime),
		Type:        eventType,
	}
	return u.repo.Create(ctx, e)
}

func (u *AgendaUseCase) ListEvents(ctx context.Context) ([]entities.AgendaEvent, error) {
	return u.repo.List(ctx)
}
