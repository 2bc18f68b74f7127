package interfaces

import (
	"context"

	"servicios_ili/internal/domain/entities"
)

// IBudgetRepository abstracts tabular-store persistence for Budget.
//
// Budgets are written once and never updated. GetByNumber returns a
// zero-value Budget when the document number is unknown. List performs the
// read-time client-name join.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error)
	GetByNumber(ctx context.Context, number string) (entities.Budget, error)
}
