package interfaces

import (
	"context"

	"servicios_ili/internal/domain/entities"
)

// IClientRepository abstracts tabular-store persistence for Client.
//
// GetByID returns a zero-value Client (empty ID) when the id is absent;
// "not found" is not an error at this layer.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
}
