package http

import (
	"time"

	"breeze/internal/model"
	"breeze/internal/task"
	"breeze/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ProjectID   string `json:"projectId"`
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=5000"`
	DueDate     string `json:"dueDate"     binding:"required"`
	Priority    string `json:"priority"    binding:"required,oneof=high medium low"`
	Tracked     bool   `json:"tracked"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Tracked:     r.Tracked,
	}
}

// ---

type listReq struct {
	ProjectID string `form:"projectId"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		ProjectID: r.ProjectID,
		Limit:     limit,
		Offset:    r.Offset,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"`
	ProjectID   string `json:"projectId"`
	Title       string `json:"title"       binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Completed   *bool  `json:"completed"`
	Tracked     *bool  `json:"tracked"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Completed:   r.Completed,
		Tracked:     r.Tracked,
	}
}

// --- Response DTOs ---

// TaskResp is the JSON shape of a task, shared with the assistant endpoint.
type TaskResp struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"projectId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DueDate     response.Date `json:"dueDate"`
	Priority    string        `json:"priority"`
	Completed   bool          `json:"completed"`
	Tracked     bool          `json:"tracked"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// NewTaskResp converts a model.Task to its JSON shape.
func NewTaskResp(t model.Task) TaskResp {
	return TaskResp{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     response.Date(t.DueDate),
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		Tracked:     t.Tracked,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type taskItemResp struct {
	Task TaskResp `json:"task"`
}

func (h *handler) newTaskItemResp(t model.Task) taskItemResp {
	return taskItemResp{Task: NewTaskResp(t)}
}

type listResp struct {
	Tasks  []TaskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]TaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = NewTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type deleteProjectResp struct {
	Deleted int `json:"deleted"`
}
