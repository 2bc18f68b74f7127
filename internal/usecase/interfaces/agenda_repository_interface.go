package interfaces

import (
	"context"

	"servicios_ili/internal/domain/entities"
)

// IAgendaRepository abstracts tabular-store persistence for AgendaEvent.
type IAgendaRepository interface {
	Create(ctx context.Context, e entities.AgendaEvent) (entities.AgendaEvent, error)
	List(ctx context.Context) ([]entities.AgendaEvent, error)
}
