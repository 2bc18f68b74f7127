package repository

import (
	"context"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

// ClientSheetRepository persists Client records in the "Clientes" sheet.
//
// Columns: id, name, cuit, address, phone, contact_person, created_at.
type ClientSheetRepository struct {
	store interfaces.ITabularStore
}

var _ interfaces.IClientRepository = (*ClientSheetRepository)(nil)

func NewClientSheetRepository(store interfaces.ITabularStore) *ClientSheetRepository {
	return &ClientSheetRepository{store: store}
}

func (r *ClientSheetRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	row := []string{c.ID, c.Name, c.Cuit, c.Address, c.Phone, c.ContactPerson, c.CreatedAt}
	if err := r.store.AppendRows(ctx, clientsSheet, clientsAppendRange, [][]string{row}); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientSheetRepository) List(ctx context.Context) ([]entities.Client, error) {
	rows, err := r.store.ReadRange(ctx, clientsSheet, clientsReadRange)
	if err != nil {
		return nil, err
	}
	clients := make([]entities.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, rowToClient(row))
	}
	return clients, nil
}

func (r *ClientSheetRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	clients, err := r.List(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	for _, c := range clients {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func rowToClient(row []string) entities.Client {
	return entities.Client{
		ID:            cell(row, 0),
		Name:          cell(row, 1),
		Cuit:          cell(row, 2),
		Address:       cell(row, 3),
		Phone:         cell(row, 4),
		ContactPerson: cell(row, 5),
		CreatedAt:     cell(row, 6),
	}
}
