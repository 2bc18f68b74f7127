package repository

import (
	"context"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

// AgendaSheetRepository persists AgendaEvent records in the "Agenda" sheet.
//
// Columns: id, client_id, title, description, start_time, end_time, type.
type AgendaSheetRepository struct {
	store   interfaces.ITabularStore
	clients interfaces.IClientRepository
}

var _ interfaces.IAgendaRepository = (*AgendaSheetRepository)(nil)

func NewAgendaSheetRepository(store interfaces.ITabularStore, clients interfaces.IClientRepository) *AgendaSheetRepository {
	return &AgendaSheetRepository{store: store, clients: clients}
}

func (r *AgendaSheetRepository) Create(ctx context.Context, e entities.AgendaEvent) (entities.AgendaEvent, error) {
	row := []string{e.ID, e.ClientID, e.Title, e.Description, e.StartTime, e.EndTime, string(e.Type)}
	if err := r.store.AppendRows(ctx, agendaSheet, agendaAppendRange, [][]string{row}); err != nil {
		return entities.AgendaEvent{}, err
	}
	return e, nil
}

func (r *AgendaSheetRepository) List(ctx context.Context) ([]entities.AgendaEvent, error) {
	rows, err := r.store.ReadRange(ctx, agendaSheet, agendaReadRange)
	if err != nil {
		return nil, err
	}

	names, err := clientNameIndex(ctx, r.clients)
	if err != nil {
		return nil, err
	}

	events := make([]entities.AgendaEvent, 0, len(rows))
	for _, row := range rows {
		e := entities.AgendaEvent{
			ID:          cell(row, 0),
			ClientID:    cell(row, 1),
			Title:       cell(row, 2),
			Description: cell(row, 3),
			StartTime:   cell(row, 4),
			EndTime:     cell(row, 5),
			Type:        entities.AgendaEventType(cell(row, 6)),
		}
		e.ClientName = lookupName(names, e.ClientID)
		events = append(events, e)
	}
	return events, nil
}
