package interfaces

import (
	"context"

	"servicios_ili/internal/domain/entities"
)

// ITaskRepository abstracts tabular-store persistence for Task.
//
// The backing sheet is append-only, so mutation is modeled as
// AppendRevision: the full updated task is appended as a new row and reads
// collapse to the newest revision per id. This keeps status patches
// idempotent and retryable.
//
// List performs the read-time client-name join (best-effort enrichment:
// a dangling client_id yields a nil name, never an error).
type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	List(ctx context.Context) ([]entities.Task, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	AppendRevision(ctx context.Context, t entities.Task) (entities.Task, error)
}
