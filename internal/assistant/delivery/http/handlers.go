package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"breeze/internal/assistant"
	"breeze/internal/middleware"
	"breeze/pkg/response"
)

// Submit godoc
// @Summary     Send a chat prompt to the task assistant
// @Description Extracts a create/update/delete intent from the prompt. Replies with a clarification
// @Description until the required fields are known, then performs the task operation.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Prompt"
// @Success     200 {object} successResp "Task dispatched"
// @Success     200 {object} clarifyResp "More input needed"
// @Failure     400 {object} errorResp "Empty prompt"
// @Failure     409 {object} errorResp "Previous message still in progress"
// @Failure     422 {object} errorResp "Task operation rejected"
// @Failure     500 {object} errorResp "Internal Server Error"
// @Failure     503 {object} errorResp "All providers exhausted"
// @Router      /api/v1/ai [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "assistant.delivery.Submit bind: %v", err)
		c.JSON(http.StatusBadRequest, errorResp{Message: "invalid request body"})
		return
	}

	out, err := h.uc.SubmitPrompt(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitPrompt: %v", err)
		c.JSON(assistant.StatusFor(err), errorResp{Message: assistant.ReplyFor(err)})
		return
	}

	c.JSON(http.StatusOK, h.newSubmitResp(out))
}

// History godoc
// @Summary     Get the assistant conversation
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.History(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(out))
}

// Reset godoc
// @Summary     Clear the assistant conversation
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/session [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, middleware.GetScope(c)); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		c.JSON(assistant.StatusFor(err), errorResp{Message: assistant.ReplyFor(err)})
		return
	}

	response.OK(c, nil)
}
