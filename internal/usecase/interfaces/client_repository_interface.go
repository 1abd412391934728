package interfaces

import (
	"context"

	"botenwerf/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client records.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
}
