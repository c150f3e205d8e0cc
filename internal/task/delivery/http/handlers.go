package http

import (
	"github.com/gin-gonic/gin"

	"breeze/internal/middleware"
	"breeze/internal/task"
	"breeze/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task owned by the caller's session.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} taskItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newTaskItemResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's live tasks, optionally filtered by project.
// @Tags        Tasks
// @Produce     json
// @Param       projectId query string false "Project filter"
// @Param       limit     query int    false "Page size (default: 50)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update; omitted fields keep their value.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Soft-deletes a task by ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Delete(ctx, middleware.GetScope(c), task.DeleteInput{
		ID:        c.Param("id"),
		ProjectID: c.Query("projectId"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output.Task))
}

// DeleteByProject godoc
// @Summary     Delete a project's tasks
// @Description Soft-deletes every task of the given project.
// @Tags        Tasks
// @Produce     json
// @Param       projectId query string true "Project ID"
// @Success     200 {object} deleteProjectResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [DELETE]
func (h *handler) DeleteByProject(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.uc.DeleteByProject(ctx, middleware.GetScope(c), c.Query("projectId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteByProject: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, deleteProjectResp{Deleted: n})
}
