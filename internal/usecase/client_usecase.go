package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

var (
	ErrClientNameRequired = errors.New("client name required")
	ErrClientNotFound     = errors.New("client not found")
)

// dateLayout is the ledger's date representation (ISO date, no time part).
const dateLayout = "2006-01-02"

// IClientUseCase exposes client registry operations.
//
// Clients are created once and never edited or deleted here; cuit is free
// text and deliberately not validated.
type IClientUseCase interface {
	CreateClient(ctx context.Context, in CreateClientInput) (entities.Client, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
}

type CreateClientInput struct {
	Name          string
	Cuit          string
	Address       string
	Phone         string
	ContactPerson string
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	ids  interfaces.IIdentifierSource
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, ids interfaces.IIdentifierSource) *ClientUseCase {
	return &ClientUseCase{repo: repo, ids: ids}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, in CreateClientInput) (entities.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Client{}, ErrClientNameRequired
	}

	c := entities.Client{
		ID:            u.ids.NewID(),
		Name:          name,
		Cuit:          strings.TrimSpace(in.Cuit),
		Address:       strings.TrimSpace(in.Address),
		Phone:         strings.TrimSpace(in.Phone),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		CreatedAt:     time.Now().UTC().Format(dateLayout),
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}
