package usecase

import (
	"context"
	"strings"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

// PortalOverview is the client-facing aggregate: the client plus its tasks
// and budgets. Access is link-based: possessing the client id is the only
// credential, so an unknown id must produce the same shape with a null
// client and empty lists rather than a distinguishable error.
type PortalOverview struct {
	Client  *entities.Client  `json:"client"`
	Tasks   []entities.Task   `json:"tasks"`
	Budgets []entities.Budget `json:"budgets"`
}

type IPortalUseCase interface {
	GetOverview(ctx context.Context, clientID string) (PortalOverview, error)
}

type PortalUseCase struct {
	clients interfaces.IClientRepository
	tasks   interfaces.ITaskRepository
	budgets interfaces.IBudgetRepository
}

var _ IPortalUseCase = (*PortalUseCase)(nil)

func NewPortalUseCase(clients interfaces.IClientRepository, tasks interfaces.ITaskRepository, budgets interfaces.IBudgetRepository) *PortalUseCase {
	return &PortalUseCase{clients: clients, tasks: tasks, budgets: budgets}
}

func (u *PortalUseCase) GetOverview(ctx context.Context, clientID string) (PortalOverview, error) {
	overview := PortalOverview{
		Tasks:   []entities.Task{},
		Budgets: []entities.Budget{},
	}

	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return overview, nil
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return PortalOverview{}, err
	}
	if client.ID == "" {
		return overview, nil
	}
	overview.Client = &client

	tasks, err := u.tasks.ListByClientID(ctx, clientID)
	if err != nil {
		return PortalOverview{}, err
	}
	if tasks != nil {
		overview.Tasks = tasks
	}

	budgets, err := u.budgets.ListByClientID(ctx, clientID)
	if err != nil {
		return PortalOverview{}, err
	}
	if budgets != nil {
		overview.Budgets = budgets
	}
	return overview, nil
}
