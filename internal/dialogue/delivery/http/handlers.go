package http

import (
	"tour-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Chat with the travel assistant
// @Description Send a message and receive the assistant reply for this turn
// @Tags Dialogue
// @Accept json
// @Produce json
// @Param body body chatReq true "Chat request"
// @Success 200 {object} chatResp
// @Failure 400 {object} response.StatusResp
// @Failure 500 {object} response.StatusResp
// @Router /api/v1/chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.Chat: processChatRequest failed: %v", err)
		response.Error(c, errInvalidBody)
		return
	}

	o, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.Chat: usecase Chat failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(o))
}

// @Summary Get conversation history
// @Description Return the full stored history for a user
// @Tags Dialogue
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} historyResp
// @Failure 400 {object} response.StatusResp
// @Failure 500 {object} response.StatusResp
// @Router /api/v1/history/{user_id} [get]
func (h *handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processHistoryRequest(c)

	o, err := h.uc.GetHistory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.GetHistory: usecase GetHistory failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(o))
}

// @Summary Clear conversation history
// @Description Drop the whole session for a user, collected slots included
// @Tags Dialogue
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} statusResp
// @Failure 400 {object} response.StatusResp
// @Router /api/v1/history/{user_id} [delete]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processHistoryRequest(c)

	if err := h.uc.ClearHistory(ctx, req.toInput()); err != nil {
		if mapped := h.mapError(err); mapped != err {
			response.Error(c, mapped)
			return
		}
		// Store faults come back as a status payload, not a 5xx, so the
		// client can show them inline.
		h.l.Errorf(ctx, "dialogue.delivery.http.ClearHistory: usecase ClearHistory failed: %v", err)
		response.OK(c, statusResp{Status: "error", Message: err.Error()})
		return
	}

	response.OK(c, statusResp{Status: "success", Message: "History cleared"})
}
