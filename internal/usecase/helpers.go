package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase/interfaces"
)

// Errors shared by every project-scoped use case. All public operations
// return one of the sentinel errors declared in this package or an
// infrastructure error from the repository; nothing panics across the
// service boundary.
var (
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrProjectNotFound  = errors.New("project not found")
	ErrRevisionConflict = errors.New("project was modified concurrently")
)

func loadProject(ctx context.Context, repo interfaces.IProjectRepository, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// saveProject writes the aggregate back under its optimistic-concurrency
// revision. A zero-value result from the repository means the stored revision
// moved under us (or the row is gone); the whole operation failed, no partial
// state was applied.
func saveProject(ctx context.Context, repo interfaces.IProjectRepository, p entities.Project) (entities.Project, error) {
	p.UpdatedAt = time.Now().UTC()
	updated, err := repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrRevisionConflict
	}
	return updated, nil
}
