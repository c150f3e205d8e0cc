package http

import (
	"github.com/gin-gonic/gin"

	"breeze/internal/middleware"
	"breeze/pkg/response"
)

// Create godoc
// @Summary     Create a project
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Project data"
// @Success     201  {object} projectItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/projects [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "project.delivery.Create bind: %v", err)
		response.Error(c, errInvalidRequest, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.Created(c, projectItemResp{Project: newProjectResp(output.Project)})
}

// List godoc
// @Summary     List projects
// @Tags        Projects
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	output, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a project
// @Tags        Projects
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} projectItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	output, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, projectItemResp{Project: newProjectResp(output.Project)})
}

// Delete godoc
// @Summary     Delete a project
// @Description Soft-deletes a project and every task filed under it.
// @Tags        Projects
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	output, err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, deleteResp{Project: newProjectResp(output.Project), TasksDeleted: output.TasksDeleted})
}
