package interfaces

import (
	"context"

	"botenwerf/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for the Project
// aggregate.
//
// Conventions (shared by all repositories here):
//   - a zero-value result with a nil error means "not found"
//   - Update is conditional on the revision the caller read; a zero-value
//     result means the condition failed (concurrent writer or deleted row)
//     and the caller must treat the operation as failed, never as partial.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error)
}
