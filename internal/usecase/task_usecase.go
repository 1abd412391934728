package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/domain/statusmachine"
	"botenwerf/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskID     = errors.New("invalid task id")
	ErrEmptyTaskTitle    = errors.New("task title must not be empty")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// AddTaskInput is the payload for a new production task.

type AddTaskInput struct {
	Title      string
	AssignedTo string
	DueDate    *time.Time
}

// ITaskUseCase manages the production task list on a project. Tasks can be
// worked in any status except CLOSED.

type ITaskUseCase interface {
	AddTask(ctx context.Context, projectID string, in AddTaskInput) (entities.Project, error)
	UpdateTaskStatus(ctx context.Context, projectID, taskID string, status entities.TaskStatus) (entities.Project, error)
}

type TaskUseCase struct {
	repo interfaces.IProjectRepository
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(repo interfaces.IProjectRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

func (u *TaskUseCase) AddTask(ctx context.Context, projectID string, in AddTaskInput) (entities.Project, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if statusmachine.IsLocked(p.Status) {
		return entities.Project{}, ErrProjectLocked
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Project{}, ErrEmptyTaskTitle
	}

	now := time.Now().UTC()
	p.Tasks = append(p.Tasks, entities.ProjectTask{
		ID:         uuid.NewString(),
		Title:      title,
		Status:     entities.TaskStatusTodo,
		AssignedTo: strings.TrimSpace(in.AssignedTo),
		DueDate:    in.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return saveProject(ctx, u.repo, p)
}

func (u *TaskUseCase) UpdateTaskStatus(ctx context.Context, projectID, taskID string, status entities.TaskStatus) (entities.Project, error) {
	if !status.Valid() {
		return entities.Project{}, ErrInvalidTaskStatus
	}

	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if statusmachine.IsLocked(p.Status) {
		return entities.Project{}, ErrProjectLocked
	}

	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Project{}, ErrInvalidTaskID
	}
	task := p.TaskByID(taskID)
	if task == nil {
		return entities.Project{}, ErrTaskNotFound
	}

	task.Status = status
	task.UpdatedAt = time.Now().UTC()
	return saveProject(ctx, u.repo, p)
}
