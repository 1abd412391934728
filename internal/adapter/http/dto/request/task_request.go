package request

import (
	"time"

	"botenwerf/internal/usecase"
)

// AddTaskRequest is the payload for a new production task.
type AddTaskRequest struct {
	Title      string     `json:"title" binding:"required"`
	AssignedTo string     `json:"assigned_to"`
	DueDate    *time.Time `json:"due_date"`
}

func (r AddTaskRequest) ToInput() usecase.AddTaskInput {
	return usecase.AddTaskInput{
		Title:      r.Title,
		AssignedTo: r.AssignedTo,
		DueDate:    r.DueDate,
	}
}

// UpdateTaskStatusRequest moves a task to a new status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
