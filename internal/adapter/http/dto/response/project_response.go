package response

import (
	"botenwerf/internal/domain/entities"
	"botenwerf/internal/domain/statusmachine"
)

// ProjectResponse is the project aggregate plus status presentation and the
// policy flags the UI keys its controls off.
type ProjectResponse struct {
	entities.Project
	StatusInfo statusmachine.StatusInfo `json:"status_info"`
	Editable   bool                     `json:"editable"`
	Frozen     bool                     `json:"frozen"`
	Locked     bool                     `json:"locked"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		Project:    p,
		StatusInfo: statusmachine.Info(p.Status),
		Editable:   statusmachine.IsEditable(p.Status),
		Frozen:     statusmachine.IsFrozen(p.Status),
		Locked:     statusmachine.IsLocked(p.Status),
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
