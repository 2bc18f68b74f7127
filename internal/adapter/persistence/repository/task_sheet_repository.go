package repository

import (
	"context"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

// TaskSheetRepository persists Task records in the "Tareas" sheet.
//
// Columns: id, client_id, description, status, priority, technician_name,
// created_at, finished_at.
//
// The sheet is an append-only log of task revisions: a status patch appends
// the full updated task as a new row, and reads collapse to the newest
// revision per id while keeping first-appearance order.
type TaskSheetRepository struct {
	store   interfaces.ITabularStore
	clients interfaces.IClientRepository
}

var _ interfaces.ITaskRepository = (*TaskSheetRepository)(nil)

func NewTaskSheetRepository(store interfaces.ITabularStore, clients interfaces.IClientRepository) *TaskSheetRepository {
	return &TaskSheetRepository{store: store, clients: clients}
}

func (r *TaskSheetRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	if err := r.store.AppendRows(ctx, tasksSheet, tasksAppendRange, [][]string{taskToRow(t)}); err != nil {
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskSheetRepository) AppendRevision(ctx context.Context, t entities.Task) (entities.Task, error) {
	if err := r.store.AppendRows(ctx, tasksSheet, tasksAppendRange, [][]string{taskToRow(t)}); err != nil {
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskSheetRepository) List(ctx context.Context) ([]entities.Task, error) {
	tasks, err := r.listCollapsed(ctx)
	if err != nil {
		return nil, err
	}

	names, err := clientNameIndex(ctx, r.clients)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].ClientName = lookupName(names, tasks[i].ClientID)
	}
	return tasks, nil
}

func (r *TaskSheetRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Task, error) {
	tasks, err := r.listCollapsed(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ClientID == clientID {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (r *TaskSheetRepository) GetByID(ctx context.Context, id string) (entities.Task, error) {
	tasks, err := r.listCollapsed(ctx)
	if err != nil {
		return entities.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return entities.Task{}, nil
}

// listCollapsed reads the full revision log and keeps the last row per id.
func (r *TaskSheetRepository) listCollapsed(ctx context.Context) ([]entities.Task, error) {
	rows, err := r.store.ReadRange(ctx, tasksSheet, tasksReadRange)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, len(rows))
	latest := make(map[string]entities.Task, len(rows))
	for _, row := range rows {
		t := rowToTask(row)
		if t.ID == "" {
			continue
		}
		if _, seen := latest[t.ID]; !seen {
			order = append(order, t.ID)
		}
		latest[t.ID] = t
	}

	tasks := make([]entities.Task, 0, len(order))
	for _, id := range order {
		tasks = append(tasks, latest[id])
	}
	return tasks, nil
}

func taskToRow(t entities.Task) []string {
	return []string{
		t.ID,
		t.ClientID,
		t.Description,
		string(t.Status),
		string(t.Priority),
		t.TechnicianName,
		t.CreatedAt,
		t.FinishedAt,
	}
}

func rowToTask(row []string) entities.Task {
	return entities.Task{
		ID:             cell(row, 0),
		ClientID:       cell(row, 1),
		Description:    cell(row, 2),
		Status:         entities.TaskStatus(cell(row, 3)),
		Priority:       entities.TaskPriority(cell(row, 4)),
		TechnicianName: cell(row, 5),
		CreatedAt:      cell(row, 6),
		FinishedAt:     cell(row, 7),
	}
}
