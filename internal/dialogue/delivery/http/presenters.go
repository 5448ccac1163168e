package http

import (
	"tour-srv/internal/dialogue"
)

type chatReq struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

func (r chatReq) toInput() dialogue.ChatInput {
	return dialogue.ChatInput{
		UserID:  r.UserID,
		Message: r.Message,
	}
}

type historyReq struct {
	UserID string
}

func (r historyReq) toInput() dialogue.HistoryInput {
	return dialogue.HistoryInput{
		UserID: r.UserID,
	}
}

type chatResp struct {
	Reply string `json:"reply"`
}

type historyResp struct {
	UserID  string        `json:"user_id"`
	History []messageResp `json:"history"`
}

type messageResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type statusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *handler) newChatResp(o dialogue.ChatOutput) chatResp {
	return chatResp{Reply: o.Reply}
}

func (h *handler) newHistoryResp(o dialogue.HistoryOutput) historyResp {
	resp := historyResp{
		UserID:  o.UserID,
		History: make([]messageResp, len(o.History)),
	}
	for i, m := range o.History {
		resp.History[i] = messageResp{
			Role:    m.Role,
			Content: m.Content,
		}
	}
	return resp
}
