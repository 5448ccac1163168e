package usecase

import (
	"context"
	"strings"

	"tour-srv/internal/dialogue"
	"tour-srv/internal/model"
)

// Chat runs one conversation turn. The steps run in fixed order: record the
// user message, extract the intent, merge the slots, transition the stage,
// branch on the intent, record the reply. Collaborator failures degrade to
// fallback replies; the only errors returned are input validation ones.
func (uc *implUseCase) Chat(ctx context.Context, input dialogue.ChatInput) (dialogue.ChatOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return dialogue.ChatOutput{}, dialogue.ErrUserIDRequired
	}
	if strings.TrimSpace(input.Message) == "" {
		return dialogue.ChatOutput{}, dialogue.ErrMessageRequired
	}

	uc.appendHistory(ctx, input.UserID, model.RoleUser, input.Message)

	session := uc.loadSession(ctx, input.UserID)
	ex := uc.extractIntent(ctx, session, input.Message)
	session = uc.mergeSession(ctx, input.UserID, ex)
	lang := session.Lang()

	uc.setStage(ctx, input.UserID, &session, model.NextStage(session.Stage, ex.Intent))

	// Branch priority follows the turn procedure: an off-topic message goes
	// to open chat even mid-search; the search mode itself stays sticky in
	// the stored stage.
	var reply string
	switch {
	case ex.Intent == model.IntentGreeting || ex.Intent == model.IntentUnknown:
		reply = uc.openChat(ctx, input.Message, lang)
	case ex.Intent == model.IntentBookTour:
		reply = uc.bookingReply(lang)
	case model.InSearchFlow(session.Stage, ex.Intent):
		reply = uc.runChecklist(ctx, session)
	default:
		reply = uc.openChat(ctx, input.Message, lang)
	}

	uc.appendHistory(ctx, input.UserID, model.RoleAssistant, reply)

	return dialogue.ChatOutput{Reply: reply}, nil
}
