package request

import (
	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase"
)

// CreateProjectRequest is the payload for POST /projects.
type CreateProjectRequest struct {
	Title          string `json:"title" binding:"required"`
	Type           string `json:"type" binding:"required"`
	ClientID       string `json:"client_id"`
	PropulsionType string `json:"propulsion_type"`
}

func (r CreateProjectRequest) ToInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		Title:          r.Title,
		Type:           entities.ProjectType(r.Type),
		ClientID:       r.ClientID,
		PropulsionType: entities.PropulsionType(r.PropulsionType),
	}
}

// TransitionRequest names the target status for POST /projects/:id/transition.
type TransitionRequest struct {
	Target string `json:"target" binding:"required"`
}
