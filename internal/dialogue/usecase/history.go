package usecase

import (
	"context"
	"fmt"
	"strings"

	"tour-srv/internal/dialogue"
)

// GetHistory returns the full stored history for a user. A missing session
// yields an empty history, not an error.
func (uc *implUseCase) GetHistory(ctx context.Context, input dialogue.HistoryInput) (dialogue.HistoryOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return dialogue.HistoryOutput{}, dialogue.ErrUserIDRequired
	}

	session := uc.loadSession(ctx, input.UserID)
	return dialogue.HistoryOutput{
		UserID:  input.UserID,
		History: session.History,
	}, nil
}

// ClearHistory drops the whole session, slots and stage included.
func (uc *implUseCase) ClearHistory(ctx context.Context, input dialogue.HistoryInput) error {
	if strings.TrimSpace(input.UserID) == "" {
		return dialogue.ErrUserIDRequired
	}

	if err := uc.repo.Delete(ctx, input.UserID); err != nil {
		uc.l.Errorf(ctx, "dialogue.usecase.ClearHistory: delete failed: %v", err)
		return fmt.Errorf("%w: %v", dialogue.ErrResetFailed, err)
	}
	return nil
}
