package http

import (
	"time"

	"breeze/internal/model"
	"breeze/internal/project"
)

type createReq struct {
	Name        string `json:"name"        binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=5000"`
	Status      string `json:"status"      binding:"required,oneof=Active Completed 'On Hold'"`
}

func (r createReq) toInput() project.CreateInput {
	return project.CreateInput{Name: r.Name, Description: r.Description, Status: r.Status}
}

type projectResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newProjectResp(p model.Project) projectResp {
	return projectResp{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type projectItemResp struct {
	Project projectResp `json:"project"`
}

type listResp struct {
	Projects []projectResp `json:"projects"`
}

func (h *handler) newListResp(out project.ListOutput) listResp {
	ps := make([]projectResp, len(out.Projects))
	for i, p := range out.Projects {
		ps[i] = newProjectResp(p)
	}
	return listResp{Projects: ps}
}

type deleteResp struct {
	Project      projectResp `json:"project"`
	TasksDeleted int         `json:"tasksDeleted"`
}
