package http

import (
	"github.com/gin-gonic/gin"

	"breeze/internal/middleware"
	"breeze/internal/note"
	"breeze/pkg/response"
)

// Create godoc
// @Summary     Create a note
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Note data"
// @Success     201  {object} noteItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "note.delivery.Create bind: %v", err)
		response.Error(c, errInvalidRequest, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), note.CreateInput{Title: req.Title, Content: req.Content})
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.Created(c, noteItemResp{Note: newNoteResp(output.Note)})
}

// List godoc
// @Summary     List notes
// @Tags        Notes
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/notes [GET]
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

// Update godoc
// @Summary     Update a note
// @Description Partial update; omitted fields keep their value.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Note ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} noteItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "note.delivery.Update bind: %v", err)
		response.Error(c, errInvalidRequest, nil)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), note.UpdateInput{
		ID:      c.Param("id"),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, noteItemResp{Note: newNoteResp(output.Note)})
}

// Delete godoc
// @Summary     Delete a note
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} noteItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	output, err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, noteItemResp{Note: newNoteResp(output.Note)})
}
