package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processChatRequest(c *gin.Context) (chatReq, error) {
	var req chatReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	return req, nil
}

func (h *handler) processHistoryRequest(c *gin.Context) historyReq {
	return historyReq{
		UserID: c.Param("user_id"),
	}
}
